package routes

import (
	"github.com/civichub/community-go/internal/api/handlers"
	"github.com/civichub/community-go/internal/api/middleware"
	"github.com/civichub/community-go/internal/rbac"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the public surface, the JWT-gated admin surface and
// the live feed onto the engine.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, auth *middleware.Auth) {
	// Public surface. Visitors read published content and post into the
	// inbox streams and notice forms.
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	r.GET("/notices", h.Notice.List)
	r.GET("/notices/:id", h.Notice.GetByID)
	r.GET("/notices/:id/form", h.Notice.GetForm)
	r.POST("/notices/:id/submissions", h.Submission.Submit)

	r.GET("/blogs", h.Blog.List)
	r.GET("/blogs/:id", h.Blog.GetByID)
	r.GET("/gallery", h.Gallery.List)
	r.GET("/gallery/:id", h.Gallery.GetByID)
	r.GET("/team", h.Team.List)

	r.POST("/contact", h.Inbox.SubmitContact)
	r.POST("/hiring", h.Inbox.SubmitApplication)
	r.POST("/feedback", h.Inbox.SubmitFeedback)

	// Admin surface. Everything below requires a valid token; each section
	// additionally requires its permission key.
	admin := r.Group("/admin", middleware.JWTAuthMiddleware())

	admin.GET("/tabs", h.Admin.Tabs)

	// Object storage sits behind the gallery permission, the narrowest role
	// set that edits images. Download additionally checks per-prefix
	// permissions inside the handler (resumes belong to hiring).
	uploads := admin.Group("/uploads", auth.RequireTab(rbac.TabGallery))
	{
		uploads.POST("", h.Upload.Upload)
		uploads.GET("", h.Upload.Download)
	}

	notices := admin.Group("/notices", auth.RequireTab(rbac.TabNotices))
	{
		notices.GET("", h.Notice.List)
		notices.GET("/:id", h.Notice.GetByID)
		notices.POST("", h.Notice.Create)
		notices.PUT("/:id", h.Notice.Update)
		notices.DELETE("/:id", h.Notice.Delete)

		notices.PUT("/:id/form", h.Notice.AttachForm)
		notices.DELETE("/:id/form", h.Notice.DetachForm)

		notices.GET("/:id/submissions", h.Submission.List)
		notices.GET("/:id/submissions/table", h.Submission.Table)
		notices.GET("/:id/submissions/export", h.Submission.ExportCSV)
	}

	// Websocket feed carries its token in the cookie set at login, so the
	// same JWT middleware applies.
	r.GET("/ws/notices/:id/submissions",
		middleware.JWTAuthMiddleware(),
		auth.Require(rbac.PermNotices),
		h.WS.SubmissionFeed)

	blogs := admin.Group("/blogs", auth.RequireTab(rbac.TabBlogs))
	{
		blogs.POST("", h.Blog.Create)
		blogs.PUT("/:id", h.Blog.Update)
		blogs.DELETE("/:id", h.Blog.Delete)
	}

	users := admin.Group("/users", auth.RequireTab(rbac.TabUsers))
	{
		users.GET("", h.User.GetUsers)
		users.GET("/:id", h.User.GetUserByID)
		users.PUT("/:id", h.User.UpdateUser)
		users.DELETE("/:id", h.User.DeleteUser)
	}

	gallery := admin.Group("/gallery", auth.RequireTab(rbac.TabGallery))
	{
		gallery.POST("", h.Gallery.Create)
		gallery.PUT("/:id", h.Gallery.Update)
		gallery.DELETE("/:id", h.Gallery.Delete)
	}

	team := admin.Group("/team", auth.RequireTab(rbac.TabTeam))
	{
		team.POST("", h.Team.Create)
		team.PUT("/:id", h.Team.Update)
		team.DELETE("/:id", h.Team.Delete)
	}

	contact := admin.Group("/contact", auth.RequireTab(rbac.TabContact))
	{
		contact.GET("", h.Inbox.ListContacts)
		contact.PUT("/:id/reviewed", h.Inbox.MarkContactReviewed)
		contact.DELETE("/:id", h.Inbox.DeleteContact)
	}

	hiring := admin.Group("/hiring", auth.RequireTab(rbac.TabHiring))
	{
		hiring.GET("", h.Inbox.ListApplications)
		hiring.PUT("/:id/reviewed", h.Inbox.MarkApplicationReviewed)
		hiring.DELETE("/:id", h.Inbox.DeleteApplication)
	}

	feedback := admin.Group("/feedback", auth.RequireTab(rbac.TabFeedback))
	{
		feedback.GET("", h.Inbox.ListFeedback)
		feedback.PUT("/:id/reviewed", h.Inbox.MarkFeedbackReviewed)
		feedback.DELETE("/:id", h.Inbox.DeleteFeedback)
	}
}
