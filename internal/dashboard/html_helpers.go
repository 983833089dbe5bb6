package dashboard

import (
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vilaca/x-affiliates/internal/domain"
)

var countPrinter = message.NewPrinter(language.English)

// templateFuncs returns the formatting helpers available to every page.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatCount":  formatCount,
		"headerAvatar": func(u domain.UserProfile) string { return u.AvatarURL(domain.AvatarLarge) },
		"cardAvatar":   func(u domain.UserProfile) string { return u.AvatarURL(domain.AvatarBigger) },
	}
}

// formatCount renders n with thousands separators, e.g. 12,345.
func formatCount(n int64) string {
	return countPrinter.Sprintf("%d", n)
}

// htmlHead is the shared document head. Pages add their own styles in a
// "styles" block.
const htmlHead = `{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<link rel="icon" type="image/svg+xml" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='0.9em' font-size='90'>🏢</text></svg>">
	<title>{{.}}</title>
	<style>
		* { margin: 0; padding: 0; box-sizing: border-box; }
		body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; min-height: 100vh; padding: 20px; }
		p { color: #657786; line-height: 1.6; }
		.btn { display: inline-block; text-decoration: none; font-weight: bold; transition: all 0.3s ease; }
		.x-link { color: #1DA1F2; text-decoration: none; font-weight: 600; }
		.x-link:hover { text-decoration: underline; }
	</style>
{{end}}`

// centeredCSS styles the single-card pages (home, error).
const centeredCSS = `{{define "centered"}}
	<style>
		body { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); display: flex; justify-content: center; align-items: center; }
		.container { background: white; border-radius: 20px; padding: 60px 40px; box-shadow: 0 20px 60px rgba(0,0,0,0.3); text-align: center; max-width: 500px; width: 100%; }
		h1 { font-size: 2.2em; margin-bottom: 20px; }
		p { font-size: 1.1em; margin-bottom: 30px; }
		.btn { background: #1DA1F2; color: white; padding: 15px 40px; border-radius: 50px; font-size: 1.1em; box-shadow: 0 4px 15px rgba(29, 161, 242, 0.4); }
		.btn:hover { background: #1991DA; transform: translateY(-2px); }
	</style>
{{end}}`
