package repository

import (
	"github.com/civichub/community-go/internal/domain/gallery"
	"gorm.io/gorm"
)

type GalleryRepo interface {
	List() ([]gallery.Event, error)
	GetByID(id uint) (gallery.Event, error)
	Create(e *gallery.Event) error
	Save(e *gallery.Event) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) GalleryRepo
}

type DBGalleryRepo struct {
	db *gorm.DB
}

func NewGalleryRepo(db *gorm.DB) *DBGalleryRepo {
	return &DBGalleryRepo{db: db}
}

func (r *DBGalleryRepo) WithTx(tx *gorm.DB) GalleryRepo {
	return &DBGalleryRepo{db: tx}
}

func (r *DBGalleryRepo) List() ([]gallery.Event, error) {
	var events []gallery.Event
	err := r.db.Order("event_date desc, id desc").Find(&events).Error
	return events, err
}

func (r *DBGalleryRepo) GetByID(id uint) (gallery.Event, error) {
	var e gallery.Event
	err := r.db.First(&e, id).Error
	return e, err
}

func (r *DBGalleryRepo) Create(e *gallery.Event) error {
	return r.db.Create(e).Error
}

func (r *DBGalleryRepo) Save(e *gallery.Event) error {
	return r.db.Save(e).Error
}

func (r *DBGalleryRepo) Delete(id uint) error {
	return r.db.Delete(&gallery.Event{}, id).Error
}
