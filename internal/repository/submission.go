package repository

import (
	"github.com/civichub/community-go/internal/domain/form"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	Create(s *form.Submission) error
	// ListByNoticeID returns submissions in creation order; table rows and
	// exports rely on this being stable.
	ListByNoticeID(noticeID uint) ([]form.Submission, error)
	DeleteByNoticeID(noticeID uint) error
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	return &DBSubmissionRepo{db: tx}
}

func (r *DBSubmissionRepo) Create(s *form.Submission) error {
	return r.db.Create(s).Error
}

func (r *DBSubmissionRepo) ListByNoticeID(noticeID uint) ([]form.Submission, error) {
	var subs []form.Submission
	err := r.db.Where("notice_id = ?", noticeID).
		Order("created_at asc, id asc").
		Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) DeleteByNoticeID(noticeID uint) error {
	return r.db.Where("notice_id = ?", noticeID).Delete(&form.Submission{}).Error
}
