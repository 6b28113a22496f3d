package repository

import (
	"github.com/civichub/community-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetAllUsers() ([]user.User, error)
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

func (r *DBUserRepo) GetAllUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("u_id asc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}
