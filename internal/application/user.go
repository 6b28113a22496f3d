package application

import (
	"errors"
	"time"

	"github.com/civichub/community-go/internal/api/middleware"
	"github.com/civichub/community-go/internal/domain/user"
	"github.com/civichub/community-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnknownRole         = errors.New("unknown role")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) error {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if err == nil {
		return ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	usr := user.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     user.RoleMember,
	}
	return s.Repos.User.SaveUser(&usr)
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Username, usr.Role, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.GetAllUsers()
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (s *UserService) UpdateUser(id uint, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return user.User{}, ErrMissingOldPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(*input.OldPassword)); err != nil {
			return user.User{}, ErrIncorrectPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}

	if input.Email != nil {
		usr.Email = input.Email
	}
	if input.FullName != nil {
		usr.FullName = input.FullName
	}
	if input.Role != nil {
		switch *input.Role {
		case user.RoleAdmin, user.RoleManager, user.RoleEditor, user.RoleModerator, user.RoleMember:
			usr.Role = *input.Role
		default:
			return user.User{}, ErrUnknownRole
		}
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.Repos.User.GetUserByID(id); err != nil {
		return ErrUserNotFound
	}
	return s.Repos.User.DeleteUser(id)
}
