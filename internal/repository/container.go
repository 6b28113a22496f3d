package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Notice     NoticeRepo
	Form       FormRepo
	Submission SubmissionRepo
	Blog       BlogRepo
	Gallery    GalleryRepo
	Team       TeamRepo
	Inbox      InboxRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Notice:     NewNoticeRepo(db),
		Form:       NewFormRepo(db),
		Submission: NewSubmissionRepo(db),
		Blog:       NewBlogRepo(db),
		Gallery:    NewGalleryRepo(db),
		Team:       NewTeamRepo(db),
		Inbox:      NewInboxRepo(db),
		db:         db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Notice:     r.Notice.WithTx(tx),
		Form:       r.Form.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Blog:       r.Blog.WithTx(tx),
		Gallery:    r.Gallery.WithTx(tx),
		Team:       r.Team.WithTx(tx),
		Inbox:      r.Inbox.WithTx(tx),
		db:         tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
