package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_OrganizationID(t *testing.T) {
	tests := []struct {
		name     string
		profile  UserProfile
		expected string
	}{
		{"no affiliation", UserProfile{ID: "1"}, ""},
		{"empty id list", UserProfile{Affiliation: &Affiliation{Description: "Acme"}}, ""},
		{"single id", UserProfile{Affiliation: &Affiliation{UserIDs: []string{"42"}}}, "42"},
		{"first of many", UserProfile{Affiliation: &Affiliation{UserIDs: []string{"7", "8", "9"}}}, "7"},
		{"empty first entry", UserProfile{Affiliation: &Affiliation{UserIDs: []string{""}}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.profile.OrganizationID())
		})
	}
}

func TestUserProfile_AvatarURL(t *testing.T) {
	u := UserProfile{ProfileImageURL: "https://pbs.twimg.com/profile_images/1/abc_normal.jpg"}

	assert.Equal(t, "https://pbs.twimg.com/profile_images/1/abc_400x400.jpg", u.AvatarURL(AvatarLarge))
	assert.Equal(t, "https://pbs.twimg.com/profile_images/1/abc_bigger.jpg", u.AvatarURL(AvatarBigger))
	assert.Equal(t, "", UserProfile{}.AvatarURL(AvatarLarge))
}

func TestUserProfile_ProfileURL(t *testing.T) {
	assert.Equal(t, "https://x.com/jack", UserProfile{Username: "jack"}.ProfileURL())
}
