package repository

import (
	"strings"

	"github.com/civichub/community-go/internal/domain/blog"
	"gorm.io/gorm"
)

type BlogRepo interface {
	List(filter blog.ListFilter) ([]blog.Post, error)
	GetByID(id uint) (blog.Post, error)
	Create(p *blog.Post) error
	Save(p *blog.Post) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) BlogRepo
}

type DBBlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *DBBlogRepo {
	return &DBBlogRepo{db: db}
}

func (r *DBBlogRepo) WithTx(tx *gorm.DB) BlogRepo {
	return &DBBlogRepo{db: tx}
}

func (r *DBBlogRepo) List(filter blog.ListFilter) ([]blog.Post, error) {
	q := r.db.Order("created_at desc")
	if query := strings.TrimSpace(filter.Query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", like, like)
	}
	if filter.Author != "" {
		q = q.Where("author = ?", filter.Author)
	}

	var posts []blog.Post
	err := q.Find(&posts).Error
	return posts, err
}

func (r *DBBlogRepo) GetByID(id uint) (blog.Post, error) {
	var p blog.Post
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBBlogRepo) Create(p *blog.Post) error {
	return r.db.Create(p).Error
}

func (r *DBBlogRepo) Save(p *blog.Post) error {
	return r.db.Save(p).Error
}

func (r *DBBlogRepo) Delete(id uint) error {
	return r.db.Delete(&blog.Post{}, id).Error
}
