package application

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/civichub/community-go/internal/domain/form"
	"github.com/civichub/community-go/internal/repository"
	"gorm.io/datatypes"
)

type SubmissionService struct {
	Repos *repository.Repos
	Feed  *SubmissionFeed
}

func NewSubmissionService(repos *repository.Repos, feed *SubmissionFeed) *SubmissionService {
	return &SubmissionService{Repos: repos, Feed: feed}
}

// Submit validates a visitor's answers against the notice's current form and
// stores them. The stored answer keys are the field labels of the definition
// snapshot at submission time.
func (s *SubmissionService) Submit(noticeID uint, input form.SubmissionInput) (form.Submission, error) {
	n, err := s.Repos.Notice.GetByID(noticeID)
	if err != nil {
		return form.Submission{}, ErrNoticeNotFound
	}
	if !n.HasForm || n.Form == nil {
		return form.Submission{}, ErrNoForm
	}

	if err := form.ValidateSubmission(n.Form, input, time.Now()); err != nil {
		return form.Submission{}, err
	}

	sub := form.Submission{
		NoticeID: n.ID,
		Name:     input.Name,
		Email:    input.Email,
		Answers:  datatypes.JSONMap(input.Answers),
	}
	if sub.Answers == nil {
		sub.Answers = datatypes.JSONMap{}
	}
	if err := s.Repos.Submission.Create(&sub); err != nil {
		return form.Submission{}, err
	}

	s.Feed.Publish(sub)
	return sub, nil
}

// List returns a notice's submissions in stored order, optionally narrowed
// by a name/email query.
func (s *SubmissionService) List(noticeID uint, query string) ([]form.Submission, error) {
	if _, err := s.Repos.Notice.GetByID(noticeID); err != nil {
		return nil, ErrNoticeNotFound
	}
	subs, err := s.Repos.Submission.ListByNoticeID(noticeID)
	if err != nil {
		return nil, err
	}
	return form.FilterSubmissions(subs, query), nil
}

// Table produces the header and rows for the admin review table.
func (s *SubmissionService) Table(noticeID uint, query string) ([]string, [][]string, error) {
	n, err := s.Repos.Notice.GetByID(noticeID)
	if err != nil {
		return nil, nil, ErrNoticeNotFound
	}
	if !n.HasForm || n.Form == nil {
		return nil, nil, ErrNoForm
	}

	subs, err := s.Repos.Submission.ListByNoticeID(noticeID)
	if err != nil {
		return nil, nil, err
	}
	subs = form.FilterSubmissions(subs, query)

	return form.ExportHeader(n.Form.Fields), form.TableRows(subs, n.Form.Fields), nil
}

// ExportCSV writes the submission table as CSV. The header/row shape is the
// whole contract with export consumers.
func (s *SubmissionService) ExportCSV(noticeID uint, query string, w io.Writer) error {
	header, rows, err := s.Table(noticeID, query)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
