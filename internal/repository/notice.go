package repository

import (
	"strings"

	"github.com/civichub/community-go/internal/domain/notice"
	"gorm.io/gorm"
)

type NoticeRepo interface {
	List(filter notice.ListFilter) ([]notice.Notice, error)
	GetByID(id uint) (notice.Notice, error)
	Create(n *notice.Notice) error
	Save(n *notice.Notice) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) NoticeRepo
}

type DBNoticeRepo struct {
	db *gorm.DB
}

func NewNoticeRepo(db *gorm.DB) *DBNoticeRepo {
	return &DBNoticeRepo{db: db}
}

func (r *DBNoticeRepo) WithTx(tx *gorm.DB) NoticeRepo {
	return &DBNoticeRepo{db: tx}
}

func (r *DBNoticeRepo) List(filter notice.ListFilter) ([]notice.Notice, error) {
	q := r.db.Preload("Form.Fields", orderFields)
	if query := strings.TrimSpace(filter.Query); query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var notices []notice.Notice
	err := q.Order("created_at desc").Find(&notices).Error
	return notices, err
}

func (r *DBNoticeRepo) GetByID(id uint) (notice.Notice, error) {
	var n notice.Notice
	err := r.db.Preload("Form.Fields", orderFields).First(&n, id).Error
	return n, err
}

func (r *DBNoticeRepo) Create(n *notice.Notice) error {
	return r.db.Create(n).Error
}

func (r *DBNoticeRepo) Save(n *notice.Notice) error {
	return r.db.Save(n).Error
}

func (r *DBNoticeRepo) Delete(id uint) error {
	return r.db.Delete(&notice.Notice{}, id).Error
}

// Field order is display order; preloads must not depend on insert order.
func orderFields(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}
