package application

import (
	"github.com/civichub/community-go/internal/repository"
)

type Services struct {
	User       *UserService
	Notice     *NoticeService
	Submission *SubmissionService
	Blog       *BlogService
	Gallery    *GalleryService
	Team       *TeamService
	Inbox      *InboxService
}

func New(repos *repository.Repos) *Services {
	feed := NewSubmissionFeed()
	return &Services{
		User:       NewUserService(repos),
		Notice:     NewNoticeService(repos),
		Submission: NewSubmissionService(repos, feed),
		Blog:       NewBlogService(repos),
		Gallery:    NewGalleryService(repos),
		Team:       NewTeamService(repos),
		Inbox:      NewInboxService(repos),
	}
}
