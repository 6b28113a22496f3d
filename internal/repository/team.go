package repository

import (
	"github.com/civichub/community-go/internal/domain/team"
	"gorm.io/gorm"
)

type TeamRepo interface {
	List() ([]team.Member, error)
	GetByID(id uint) (team.Member, error)
	Create(m *team.Member) error
	Save(m *team.Member) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) TeamRepo
}

type DBTeamRepo struct {
	db *gorm.DB
}

func NewTeamRepo(db *gorm.DB) *DBTeamRepo {
	return &DBTeamRepo{db: db}
}

func (r *DBTeamRepo) WithTx(tx *gorm.DB) TeamRepo {
	return &DBTeamRepo{db: tx}
}

func (r *DBTeamRepo) List() ([]team.Member, error) {
	var members []team.Member
	err := r.db.Order("display_order asc, id asc").Find(&members).Error
	return members, err
}

func (r *DBTeamRepo) GetByID(id uint) (team.Member, error) {
	var m team.Member
	err := r.db.First(&m, id).Error
	return m, err
}

func (r *DBTeamRepo) Create(m *team.Member) error {
	return r.db.Create(m).Error
}

func (r *DBTeamRepo) Save(m *team.Member) error {
	return r.db.Save(m).Error
}

func (r *DBTeamRepo) Delete(id uint) error {
	return r.db.Delete(&team.Member{}, id).Error
}
