package application

import (
	"errors"

	"github.com/civichub/community-go/internal/domain/inbox"
	"github.com/civichub/community-go/internal/repository"
)

var ErrInboxItemNotFound = errors.New("inbox item not found")

type InboxService struct {
	Repos *repository.Repos
}

func NewInboxService(repos *repository.Repos) *InboxService {
	return &InboxService{Repos: repos}
}

func (s *InboxService) SubmitContact(input inbox.ContactInput) (inbox.ContactMessage, error) {
	m := inbox.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	return m, s.Repos.Inbox.CreateContact(&m)
}

func (s *InboxService) ListContacts(filter inbox.ListFilter) ([]inbox.ContactMessage, error) {
	return s.Repos.Inbox.ListContacts(filter)
}

func (s *InboxService) MarkContactReviewed(id uint) (inbox.ContactMessage, error) {
	m, err := s.Repos.Inbox.GetContactByID(id)
	if err != nil {
		return inbox.ContactMessage{}, ErrInboxItemNotFound
	}
	m.Reviewed = true
	return m, s.Repos.Inbox.SaveContact(&m)
}

func (s *InboxService) DeleteContact(id uint) error {
	if _, err := s.Repos.Inbox.GetContactByID(id); err != nil {
		return ErrInboxItemNotFound
	}
	return s.Repos.Inbox.DeleteContact(id)
}

func (s *InboxService) SubmitApplication(input inbox.HiringInput, resumeKey string) (inbox.HiringApplication, error) {
	a := inbox.HiringApplication{
		Name:      input.Name,
		Email:     input.Email,
		Position:  input.Position,
		Note:      input.Note,
		ResumeKey: resumeKey,
	}
	return a, s.Repos.Inbox.CreateApplication(&a)
}

func (s *InboxService) ListApplications(filter inbox.ListFilter) ([]inbox.HiringApplication, error) {
	return s.Repos.Inbox.ListApplications(filter)
}

func (s *InboxService) MarkApplicationReviewed(id uint) (inbox.HiringApplication, error) {
	a, err := s.Repos.Inbox.GetApplicationByID(id)
	if err != nil {
		return inbox.HiringApplication{}, ErrInboxItemNotFound
	}
	a.Reviewed = true
	return a, s.Repos.Inbox.SaveApplication(&a)
}

func (s *InboxService) DeleteApplication(id uint) error {
	if _, err := s.Repos.Inbox.GetApplicationByID(id); err != nil {
		return ErrInboxItemNotFound
	}
	return s.Repos.Inbox.DeleteApplication(id)
}

func (s *InboxService) SubmitFeedback(input inbox.FeedbackInput) (inbox.Feedback, error) {
	f := inbox.Feedback{
		Name:    input.Name,
		Email:   input.Email,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	return f, s.Repos.Inbox.CreateFeedback(&f)
}

func (s *InboxService) ListFeedback(filter inbox.ListFilter) ([]inbox.Feedback, error) {
	return s.Repos.Inbox.ListFeedback(filter)
}

func (s *InboxService) MarkFeedbackReviewed(id uint) (inbox.Feedback, error) {
	f, err := s.Repos.Inbox.GetFeedbackByID(id)
	if err != nil {
		return inbox.Feedback{}, ErrInboxItemNotFound
	}
	f.Reviewed = true
	return f, s.Repos.Inbox.SaveFeedback(&f)
}

func (s *InboxService) DeleteFeedback(id uint) error {
	if _, err := s.Repos.Inbox.GetFeedbackByID(id); err != nil {
		return ErrInboxItemNotFound
	}
	return s.Repos.Inbox.DeleteFeedback(id)
}
