package repository

import (
	"github.com/civichub/community-go/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	GetByNoticeID(noticeID uint) (form.Definition, error)
	Create(def *form.Definition) error
	// DeleteByNoticeID removes the definition and its fields; submissions
	// are owned by SubmissionRepo and are left alone here.
	DeleteByNoticeID(noticeID uint) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}

func (r *DBFormRepo) GetByNoticeID(noticeID uint) (form.Definition, error) {
	var def form.Definition
	err := r.db.Preload("Fields", orderFields).
		Where("notice_id = ?", noticeID).
		First(&def).Error
	return def, err
}

func (r *DBFormRepo) Create(def *form.Definition) error {
	return r.db.Create(def).Error
}

func (r *DBFormRepo) DeleteByNoticeID(noticeID uint) error {
	var def form.Definition
	err := r.db.Where("notice_id = ?", noticeID).First(&def).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	if err := r.db.Where("definition_id = ?", def.ID).Delete(&form.Field{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&def).Error
}
