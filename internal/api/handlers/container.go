package handlers

import (
	"github.com/civichub/community-go/internal/application"
	"github.com/civichub/community-go/internal/rbac"
)

type Handlers struct {
	User       *UserHandler
	Notice     *NoticeHandler
	Submission *SubmissionHandler
	Blog       *BlogHandler
	Gallery    *GalleryHandler
	Team       *TeamHandler
	Inbox      *InboxHandler
	Admin      *AdminHandler
	Upload     *UploadHandler
	WS         *WSHandler
}

func New(svc *application.Services, perms *rbac.Config) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Notice:     NewNoticeHandler(svc.Notice),
		Submission: NewSubmissionHandler(svc.Submission),
		Blog:       NewBlogHandler(svc.Blog),
		Gallery:    NewGalleryHandler(svc.Gallery),
		Team:       NewTeamHandler(svc.Team),
		Inbox:      NewInboxHandler(svc.Inbox),
		Admin:      NewAdminHandler(perms),
		Upload:     NewUploadHandler(perms),
		WS:         NewWSHandler(svc.Submission),
	}
}
