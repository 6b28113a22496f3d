package application

import (
	"errors"

	"github.com/civichub/community-go/internal/domain/team"
	"github.com/civichub/community-go/internal/repository"
)

var ErrMemberNotFound = errors.New("team member not found")

type TeamService struct {
	Repos *repository.Repos
}

func NewTeamService(repos *repository.Repos) *TeamService {
	return &TeamService{Repos: repos}
}

func (s *TeamService) List() ([]team.Member, error) {
	return s.Repos.Team.List()
}

func (s *TeamService) FindByID(id uint) (team.Member, error) {
	m, err := s.Repos.Team.GetByID(id)
	if err != nil {
		return team.Member{}, ErrMemberNotFound
	}
	return m, nil
}

func (s *TeamService) Create(input team.CreateMemberInput) (team.Member, error) {
	m := team.Member{
		Name:         input.Name,
		Position:     input.Position,
		Bio:          input.Bio,
		PhotoKey:     input.PhotoKey,
		DisplayOrder: input.DisplayOrder,
	}
	return m, s.Repos.Team.Create(&m)
}

func (s *TeamService) Update(id uint, input team.UpdateMemberInput) (team.Member, error) {
	m, err := s.FindByID(id)
	if err != nil {
		return team.Member{}, err
	}

	if input.Name != nil {
		m.Name = *input.Name
	}
	if input.Position != nil {
		m.Position = *input.Position
	}
	if input.Bio != nil {
		m.Bio = *input.Bio
	}
	if input.PhotoKey != nil {
		m.PhotoKey = *input.PhotoKey
	}
	if input.DisplayOrder != nil {
		m.DisplayOrder = *input.DisplayOrder
	}

	if err := s.Repos.Team.Save(&m); err != nil {
		return team.Member{}, err
	}
	return m, nil
}

func (s *TeamService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.Repos.Team.Delete(id)
}
