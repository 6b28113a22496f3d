package repository

import (
	"strings"

	"github.com/civichub/community-go/internal/domain/inbox"
	"gorm.io/gorm"
)

type InboxRepo interface {
	CreateContact(m *inbox.ContactMessage) error
	ListContacts(filter inbox.ListFilter) ([]inbox.ContactMessage, error)
	SaveContact(m *inbox.ContactMessage) error
	GetContactByID(id uint) (inbox.ContactMessage, error)
	DeleteContact(id uint) error

	CreateApplication(a *inbox.HiringApplication) error
	ListApplications(filter inbox.ListFilter) ([]inbox.HiringApplication, error)
	SaveApplication(a *inbox.HiringApplication) error
	GetApplicationByID(id uint) (inbox.HiringApplication, error)
	DeleteApplication(id uint) error

	CreateFeedback(f *inbox.Feedback) error
	ListFeedback(filter inbox.ListFilter) ([]inbox.Feedback, error)
	SaveFeedback(f *inbox.Feedback) error
	GetFeedbackByID(id uint) (inbox.Feedback, error)
	DeleteFeedback(id uint) error

	WithTx(tx *gorm.DB) InboxRepo
}

type DBInboxRepo struct {
	db *gorm.DB
}

func NewInboxRepo(db *gorm.DB) *DBInboxRepo {
	return &DBInboxRepo{db: db}
}

func (r *DBInboxRepo) WithTx(tx *gorm.DB) InboxRepo {
	return &DBInboxRepo{db: tx}
}

func (r *DBInboxRepo) filtered(filter inbox.ListFilter) *gorm.DB {
	q := r.db.Order("created_at desc")
	if query := strings.TrimSpace(filter.Query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if filter.Reviewed != nil {
		q = q.Where("reviewed = ?", *filter.Reviewed)
	}
	return q
}

func (r *DBInboxRepo) CreateContact(m *inbox.ContactMessage) error {
	return r.db.Create(m).Error
}

func (r *DBInboxRepo) ListContacts(filter inbox.ListFilter) ([]inbox.ContactMessage, error) {
	var msgs []inbox.ContactMessage
	err := r.filtered(filter).Find(&msgs).Error
	return msgs, err
}

func (r *DBInboxRepo) SaveContact(m *inbox.ContactMessage) error {
	return r.db.Save(m).Error
}

func (r *DBInboxRepo) GetContactByID(id uint) (inbox.ContactMessage, error) {
	var m inbox.ContactMessage
	err := r.db.First(&m, id).Error
	return m, err
}

func (r *DBInboxRepo) DeleteContact(id uint) error {
	return r.db.Delete(&inbox.ContactMessage{}, id).Error
}

func (r *DBInboxRepo) CreateApplication(a *inbox.HiringApplication) error {
	return r.db.Create(a).Error
}

func (r *DBInboxRepo) ListApplications(filter inbox.ListFilter) ([]inbox.HiringApplication, error) {
	var apps []inbox.HiringApplication
	err := r.filtered(filter).Find(&apps).Error
	return apps, err
}

func (r *DBInboxRepo) SaveApplication(a *inbox.HiringApplication) error {
	return r.db.Save(a).Error
}

func (r *DBInboxRepo) GetApplicationByID(id uint) (inbox.HiringApplication, error) {
	var a inbox.HiringApplication
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBInboxRepo) DeleteApplication(id uint) error {
	return r.db.Delete(&inbox.HiringApplication{}, id).Error
}

func (r *DBInboxRepo) CreateFeedback(f *inbox.Feedback) error {
	return r.db.Create(f).Error
}

func (r *DBInboxRepo) ListFeedback(filter inbox.ListFilter) ([]inbox.Feedback, error) {
	var fbs []inbox.Feedback
	err := r.filtered(filter).Find(&fbs).Error
	return fbs, err
}

func (r *DBInboxRepo) SaveFeedback(f *inbox.Feedback) error {
	return r.db.Save(f).Error
}

func (r *DBInboxRepo) GetFeedbackByID(id uint) (inbox.Feedback, error) {
	var f inbox.Feedback
	err := r.db.First(&f, id).Error
	return f, err
}

func (r *DBInboxRepo) DeleteFeedback(id uint) error {
	return r.db.Delete(&inbox.Feedback{}, id).Error
}
