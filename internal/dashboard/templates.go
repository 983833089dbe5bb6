package dashboard

const homeTemplate = `{{template "head" "X Company Affiliates Finder"}}{{template "centered"}}
	<style>
		h1 { color: #1DA1F2; }
		.feature-list { text-align: left; margin: 30px 0; padding: 0 20px; }
		.feature-item { display: flex; align-items: center; margin: 15px 0; color: #14171A; }
		.feature-icon { background: #E8F5FE; border-radius: 50%; width: 30px; height: 30px; display: flex; align-items: center; justify-content: center; margin-right: 15px; font-size: 1.2em; }
	</style>
</head>
<body>
	<div class="container">
		<h1>🏢 X Affiliates Finder</h1>
		<p>Discover colleagues and team members from your organization on X (Twitter)</p>
		<div class="feature-list">
			<div class="feature-item"><div class="feature-icon">🔐</div><span>Secure OAuth 2.0 authentication</span></div>
			<div class="feature-item"><div class="feature-icon">🔍</div><span>Find your company affiliation</span></div>
			<div class="feature-item"><div class="feature-icon">👥</div><span>View all affiliated members</span></div>
		</div>
		{{if .LoggedIn}}<a href="/dashboard" class="btn">View Dashboard</a>{{else}}<a href="/login" class="btn">Login with X</a>{{end}}
	</div>
</body>
</html>`

const dashboardTemplate = `{{template "head" "Dashboard - X Affiliates"}}
	<style>
		body { background: #F7F9FA; }
		.header, .section, .affiliation-badge { border-radius: 15px; padding: 30px; margin-bottom: 30px; }
		.header { background: white; box-shadow: 0 2px 10px rgba(0,0,0,0.1); display: flex; align-items: center; justify-content: space-between; flex-wrap: wrap; gap: 20px; }
		.user-info { display: flex; align-items: center; gap: 20px; }
		.avatar { width: 80px; height: 80px; border-radius: 50%; border: 3px solid #1DA1F2; }
		.user-details h1 { color: #14171A; font-size: 1.8em; margin-bottom: 5px; }
		.username { color: #657786; font-size: 1.1em; }
		.stats { display: flex; gap: 30px; margin-top: 10px; font-size: 0.9em; }
		.stat-number { font-weight: bold; color: #14171A; }
		.stat-label { color: #657786; }
		.nav-buttons { display: flex; gap: 10px; }
		.btn { padding: 12px 24px; border-radius: 25px; }
		.btn-primary { background: #1DA1F2; color: white; }
		.btn-secondary { background: #E8F5FE; color: #1DA1F2; }
		.affiliation-badge { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; }
		.affiliation-badge h2 { margin-bottom: 10px; }
		.affiliation-badge p, .affiliation-badge .x-link { color: white; }
		.section { background: white; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
		.section h2 { color: #14171A; margin-bottom: 20px; display: flex; align-items: center; gap: 10px; }
		.count-badge { background: #1DA1F2; color: white; padding: 4px 12px; border-radius: 20px; font-size: 0.7em; }
		.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 20px; }
		.affiliate-card { border: 1px solid #E1E8ED; border-radius: 12px; padding: 20px; }
		.affiliate-card:hover { box-shadow: 0 4px 15px rgba(0,0,0,0.1); }
		.profile-link { text-decoration: none; color: inherit; }
		.affiliate-header { display: flex; align-items: center; gap: 15px; margin-bottom: 15px; }
		.affiliate-avatar { width: 56px; height: 56px; border-radius: 50%; }
		.affiliate-info h3 { color: #14171A; font-size: 1.1em; }
		.affiliate-bio { color: #14171A; font-size: 0.95em; line-height: 1.5; margin-bottom: 15px; }
		.affiliate-stats { display: flex; justify-content: space-around; padding: 10px 0; margin-bottom: 10px; border-top: 1px solid #E1E8ED; }
		.affiliate-stat { text-align: center; }
		.affiliate-stat-number { font-weight: bold; color: #14171A; }
		.affiliate-stat-label { color: #657786; font-size: 0.8em; }
		.empty-state { text-align: center; padding: 40px 20px; }
		.empty-state-icon { font-size: 3em; margin-bottom: 15px; }
		.empty-state h3 { color: #14171A; margin-bottom: 10px; }
		@media (max-width: 768px) { .stats { flex-wrap: wrap; } .grid { grid-template-columns: 1fr; } }
	</style>
</head>
<body>
	<div class="header">
		<div class="user-info">
			<img src="{{headerAvatar .User}}" alt="{{.User.Name}}" class="avatar">
			<div class="user-details">
				<h1>{{.User.Name}}</h1>
				<div class="username">@{{.User.Username}}</div>
				{{with .User.PublicMetrics}}<div class="stats">
					<div class="stat"><span class="stat-number">{{formatCount .FollowersCount}}</span> <span class="stat-label">Followers</span></div>
					<div class="stat"><span class="stat-number">{{formatCount .FollowingCount}}</span> <span class="stat-label">Following</span></div>
					<div class="stat"><span class="stat-number">{{formatCount .TweetCount}}</span> <span class="stat-label">Posts</span></div>
				</div>{{end}}
			</div>
		</div>
		<div class="nav-buttons">
			<a href="/" class="btn btn-secondary">Home</a>
			<a href="/logout" class="btn btn-primary">Logout</a>
		</div>
	</div>
	{{if .User.Affiliation}}
	<div class="affiliation-badge">
		<h2>🏢 Your Company Affiliation</h2>
		<p>{{or .User.Affiliation.Description "Affiliated organization member"}}</p>
		{{with .User.Affiliation.URL}}<a href="{{.}}" class="x-link" target="_blank">Learn more →</a>{{end}}
	</div>
	{{else if .OrganizationID}}
	<div class="affiliation-badge">
		<h2>🏢 Company Affiliation Detected</h2>
		<p>Organization ID: {{.OrganizationID}}</p>
	</div>
	{{else}}
	<div class="section">
		<div class="empty-state">
			<div class="empty-state-icon">🔍</div>
			<h3>No Company Affiliation Found</h3>
			<p>Your X profile doesn't have a company affiliation set up yet.</p>
			<p>Contact your organization administrator to get added.</p>
		</div>
	</div>
	{{end}}
	{{if .Affiliates}}
	<div class="section">
		<h2>👥 Team Members <span class="count-badge">{{len .Affiliates}}</span></h2>
		<div class="grid">
			{{range .Affiliates}}
			<div class="affiliate-card">
				<a href="{{.ProfileURL}}" target="_blank" class="profile-link">
					<div class="affiliate-header">
						<img src="{{cardAvatar .}}" alt="{{.Name}}" class="affiliate-avatar">
						<div class="affiliate-info">
							<h3>{{.Name}}</h3>
							<div class="username">@{{.Username}}</div>
						</div>
					</div>
				</a>
				{{with .Description}}<div class="affiliate-bio">{{.}}</div>{{end}}
				{{with .PublicMetrics}}<div class="affiliate-stats">
					<div class="affiliate-stat"><div class="affiliate-stat-number">{{formatCount .FollowersCount}}</div><div class="affiliate-stat-label">Followers</div></div>
					<div class="affiliate-stat"><div class="affiliate-stat-number">{{formatCount .FollowingCount}}</div><div class="affiliate-stat-label">Following</div></div>
					<div class="affiliate-stat"><div class="affiliate-stat-number">{{formatCount .TweetCount}}</div><div class="affiliate-stat-label">Posts</div></div>
				</div>{{end}}
				<a href="{{.ProfileURL}}" target="_blank" class="x-link">View on X →</a>
			</div>
			{{end}}
		</div>
	</div>
	{{else if .OrganizationID}}
	<div class="section">
		<div class="empty-state">
			<div class="empty-state-icon">👥</div>
			<h3>No Team Members Found</h3>
			<p>No other users are currently affiliated with your organization.</p>
		</div>
	</div>
	{{end}}
</body>
</html>`

const errorTemplate = `{{template "head" "Error - X Affiliates"}}{{template "centered"}}
	<style>
		h1 { color: #E0245E; }
		.error-icon { font-size: 4em; margin-bottom: 20px; }
	</style>
</head>
<body>
	<div class="container">
		<div class="error-icon">⚠️</div>
		<h1>Oops! Something went wrong</h1>
		<p>{{.Message}}</p>
		<a href="/" class="btn">Go Home</a>
	</div>
</body>
</html>`
