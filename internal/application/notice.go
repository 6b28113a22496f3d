package application

import (
	"errors"

	"github.com/civichub/community-go/internal/domain/form"
	"github.com/civichub/community-go/internal/domain/notice"
	"github.com/civichub/community-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNoticeNotFound = errors.New("notice not found")
	ErrNoForm         = errors.New("notice has no form")
)

type NoticeService struct {
	Repos *repository.Repos
}

func NewNoticeService(repos *repository.Repos) *NoticeService {
	return &NoticeService{Repos: repos}
}

func (s *NoticeService) List(filter notice.ListFilter) ([]notice.Notice, error) {
	return s.Repos.Notice.List(filter)
}

func (s *NoticeService) FindByID(id uint) (notice.Notice, error) {
	n, err := s.Repos.Notice.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notice.Notice{}, ErrNoticeNotFound
		}
		return notice.Notice{}, err
	}
	return n, nil
}

func (s *NoticeService) Create(input notice.CreateNoticeInput) (notice.Notice, error) {
	n := notice.Notice{
		Title:       input.Title,
		Type:        input.Type,
		Description: input.Description,
		Published:   true,
	}
	if input.Published != nil {
		n.Published = *input.Published
	}
	return n, s.Repos.Notice.Create(&n)
}

func (s *NoticeService) Update(id uint, input notice.UpdateNoticeInput) (notice.Notice, error) {
	n, err := s.FindByID(id)
	if err != nil {
		return notice.Notice{}, err
	}

	if input.Title != nil {
		n.Title = *input.Title
	}
	if input.Type != nil {
		n.Type = *input.Type
	}
	if input.Description != nil {
		n.Description = *input.Description
	}
	if input.Published != nil {
		n.Published = *input.Published
	}

	// Save must not touch the preloaded associations.
	n.Form = nil
	n.Submissions = nil
	if err := s.Repos.Notice.Save(&n); err != nil {
		return notice.Notice{}, err
	}
	return s.FindByID(id)
}

// Delete removes the notice together with its form and submissions.
func (s *NoticeService) Delete(id uint) error {
	if _, err := s.FindByID(id); err != nil {
		return err
	}
	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Submission.DeleteByNoticeID(id); err != nil {
			return err
		}
		if err := tx.Form.DeleteByNoticeID(id); err != nil {
			return err
		}
		return tx.Notice.Delete(id)
	})
}

// AttachForm validates the definition and installs it on the notice,
// replacing any previous one. Existing submissions are kept as-is: answers
// captured against old field labels simply stop lining up with the new
// fields, which the table renderer tolerates.
func (s *NoticeService) AttachForm(noticeID uint, input form.DefinitionInput) (form.Definition, error) {
	n, err := s.FindByID(noticeID)
	if err != nil {
		return form.Definition{}, err
	}

	def, err := form.BuildDefinition(input)
	if err != nil {
		return form.Definition{}, err
	}
	def.NoticeID = n.ID

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.DeleteByNoticeID(n.ID); err != nil {
			return err
		}
		if err := tx.Form.Create(&def); err != nil {
			return err
		}
		if !n.HasForm {
			n.HasForm = true
			n.Form = nil
			n.Submissions = nil
			return tx.Notice.Save(&n)
		}
		return nil
	})
	if err != nil {
		return form.Definition{}, err
	}
	return def, nil
}

// GetForm returns the notice's current form definition, fields in position
// order, for the public signup page to render.
func (s *NoticeService) GetForm(noticeID uint) (form.Definition, error) {
	n, err := s.FindByID(noticeID)
	if err != nil {
		return form.Definition{}, err
	}
	if !n.HasForm {
		return form.Definition{}, ErrNoForm
	}

	def, err := s.Repos.Form.GetByNoticeID(n.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return form.Definition{}, ErrNoForm
		}
		return form.Definition{}, err
	}
	return def, nil
}

// DetachForm removes the form and its submissions, restoring the
// hasForm=false invariant (no form, no submissions).
func (s *NoticeService) DetachForm(noticeID uint) error {
	n, err := s.FindByID(noticeID)
	if err != nil {
		return err
	}
	if !n.HasForm {
		return ErrNoForm
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Submission.DeleteByNoticeID(n.ID); err != nil {
			return err
		}
		if err := tx.Form.DeleteByNoticeID(n.ID); err != nil {
			return err
		}
		n.HasForm = false
		n.Form = nil
		n.Submissions = nil
		return tx.Notice.Save(&n)
	})
}
