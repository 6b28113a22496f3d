package rbac

// Permission keys for the admin surface.
const (
	PermNotices  = "notices_management"
	PermBlogs    = "blogs_management"
	PermUsers    = "user_management"
	PermGallery  = "gallery_management"
	PermTeam     = "team_management"
	PermContact  = "contact_management"
	PermHiring   = "hiring_management"
	PermFeedback = "feedback_management"
)

// Tab identifiers. Declaration order in Default is the display order.
const (
	TabNotices  = "notices"
	TabBlogs    = "blogs"
	TabUsers    = "users"
	TabGallery  = "gallery"
	TabTeam     = "team"
	TabContact  = "contact"
	TabHiring   = "hiring"
	TabFeedback = "feedback"
)

// Default returns the built-in permission tables. Each call builds a fresh
// value so tests can take a copy and tweak it without affecting others.
func Default() *Config {
	return &Config{
		Roles: map[string][]string{
			"admin": {Wildcard},
			"manager": {
				PermNotices,
				PermBlogs,
				PermGallery,
				PermTeam,
				PermContact,
				PermHiring,
				PermFeedback,
			},
			"editor": {
				PermNotices,
				PermBlogs,
				PermGallery,
			},
			"moderator": {
				PermContact,
				PermFeedback,
			},
		},
		Tabs: []TabRule{
			{ID: TabNotices, Permission: PermNotices},
			{ID: TabBlogs, Permission: PermBlogs},
			{ID: TabUsers, Permission: PermUsers},
			{ID: TabGallery, Permission: PermGallery},
			{ID: TabTeam, Permission: PermTeam},
			{ID: TabContact, Permission: PermContact},
			{ID: TabHiring, Permission: PermHiring},
			{ID: TabFeedback, Permission: PermFeedback},
		},
	}
}
