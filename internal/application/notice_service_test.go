package application

import (
	"errors"
	"testing"

	"github.com/civichub/community-go/internal/domain/form"
	"github.com/civichub/community-go/internal/domain/notice"
	"github.com/civichub/community-go/internal/repository"
	"github.com/civichub/community-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupNoticeServiceMocks(t *testing.T) (*NoticeService, *mock.MockNoticeRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotice := mock.NewMockNoticeRepo(ctrl)
	repos := &repository.Repos{
		Notice: mockNotice,
	}
	svc := NewNoticeService(repos)
	return svc, mockNotice
}

func setupNoticeServiceWithFormMocks(t *testing.T) (*NoticeService, *mock.MockNoticeRepo, *mock.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotice := mock.NewMockNoticeRepo(ctrl)
	mockForm := mock.NewMockFormRepo(ctrl)
	repos := &repository.Repos{
		Notice: mockNotice,
		Form:   mockForm,
	}
	svc := NewNoticeService(repos)
	return svc, mockNotice, mockForm
}

// --------------------- FindByID ---------------------
func TestFindNoticeByID_Success(t *testing.T) {
	svc, mockNotice := setupNoticeServiceMocks(t)

	mockNotice.EXPECT().GetByID(uint(1)).Return(notice.Notice{ID: 1, Title: "Town Hall"}, nil)

	n, err := svc.FindByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "Town Hall", n.Title)
}

func TestFindNoticeByID_NotFound(t *testing.T) {
	svc, mockNotice := setupNoticeServiceMocks(t)

	mockNotice.EXPECT().GetByID(uint(99)).Return(notice.Notice{}, gorm.ErrRecordNotFound)

	_, err := svc.FindByID(99)
	assert.ErrorIs(t, err, ErrNoticeNotFound)
}

// --------------------- Create ---------------------
func TestCreateNotice_DefaultsToPublished(t *testing.T) {
	svc, mockNotice := setupNoticeServiceMocks(t)

	mockNotice.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notice.Notice) error {
		assert.True(t, n.Published)
		assert.False(t, n.HasForm)
		return nil
	})

	n, err := svc.Create(notice.CreateNoticeInput{Title: "Cleanup Day", Type: "event"})
	assert.NoError(t, err)
	assert.Equal(t, "Cleanup Day", n.Title)
}

func TestCreateNotice_ExplicitUnpublished(t *testing.T) {
	svc, mockNotice := setupNoticeServiceMocks(t)

	published := false
	mockNotice.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notice.Notice) error {
		assert.False(t, n.Published)
		return nil
	})

	_, err := svc.Create(notice.CreateNoticeInput{Title: "Draft", Published: &published})
	assert.NoError(t, err)
}

// --------------------- Update ---------------------
func TestUpdateNotice_Success(t *testing.T) {
	svc, mockNotice := setupNoticeServiceMocks(t)

	existing := notice.Notice{ID: 1, Title: "Old", HasForm: true, Form: &form.Definition{ID: 5}}
	mockNotice.EXPECT().GetByID(uint(1)).Return(existing, nil)
	mockNotice.EXPECT().Save(gomock.Any()).DoAndReturn(func(n *notice.Notice) error {
		assert.Equal(t, "New", n.Title)
		// Preloaded associations must not ride along into the save.
		assert.Nil(t, n.Form)
		assert.Nil(t, n.Submissions)
		return nil
	})
	mockNotice.EXPECT().GetByID(uint(1)).Return(notice.Notice{ID: 1, Title: "New", HasForm: true}, nil)

	n, err := svc.Update(1, notice.UpdateNoticeInput{Title: ptrString("New")})
	assert.NoError(t, err)
	assert.Equal(t, "New", n.Title)
	assert.True(t, n.HasForm)
}

func TestUpdateNotice_NotFound(t *testing.T) {
	svc, mockNotice := setupNoticeServiceMocks(t)

	mockNotice.EXPECT().GetByID(uint(1)).Return(notice.Notice{}, gorm.ErrRecordNotFound)

	_, err := svc.Update(1, notice.UpdateNoticeInput{Title: ptrString("New")})
	assert.ErrorIs(t, err, ErrNoticeNotFound)
}

// --------------------- AttachForm validation ---------------------
func TestAttachForm_RejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name  string
		input form.DefinitionInput
		want  error
	}{
		{
			name: "empty label",
			input: form.DefinitionInput{
				Title:  "Signup",
				Fields: []form.FieldInput{{Type: form.FieldText, Label: "   "}},
			},
			want: form.ErrEmptyLabel,
		},
		{
			name: "duplicate label",
			input: form.DefinitionInput{
				Title: "Signup",
				Fields: []form.FieldInput{
					{Type: form.FieldText, Label: "Name"},
					{Type: form.FieldEmail, Label: "Name"},
				},
			},
			want: form.ErrDuplicateLabel,
		},
		{
			name: "unknown type",
			input: form.DefinitionInput{
				Title:  "Signup",
				Fields: []form.FieldInput{{Type: "slider", Label: "Level"}},
			},
			want: form.ErrUnknownFieldType,
		},
		{
			name: "radio without options",
			input: form.DefinitionInput{
				Title:  "Signup",
				Fields: []form.FieldInput{{Type: form.FieldRadio, Label: "Size"}},
			},
			want: form.ErrNoOptions,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockNotice := setupNoticeServiceMocks(t)
			mockNotice.EXPECT().GetByID(uint(1)).Return(notice.Notice{ID: 1}, nil)

			_, err := svc.AttachForm(1, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAttachForm_NoticeNotFound(t *testing.T) {
	svc, mockNotice := setupNoticeServiceMocks(t)

	mockNotice.EXPECT().GetByID(uint(7)).Return(notice.Notice{}, gorm.ErrRecordNotFound)

	_, err := svc.AttachForm(7, form.DefinitionInput{Title: "Signup"})
	assert.ErrorIs(t, err, ErrNoticeNotFound)
}

// --------------------- GetForm ---------------------
func TestGetForm_Success(t *testing.T) {
	svc, mockNotice, mockForm := setupNoticeServiceWithFormMocks(t)

	mockNotice.EXPECT().GetByID(uint(1)).Return(notice.Notice{ID: 1, HasForm: true}, nil)
	mockForm.EXPECT().GetByNoticeID(uint(1)).Return(form.Definition{
		ID:       5,
		NoticeID: 1,
		Title:    "Signup",
		Fields:   []form.Field{{ID: 1, Label: "Nickname", Type: form.FieldText}},
	}, nil)

	def, err := svc.GetForm(1)
	assert.NoError(t, err)
	assert.Equal(t, "Signup", def.Title)
	assert.Len(t, def.Fields, 1)
}

func TestGetForm_NoForm(t *testing.T) {
	svc, mockNotice, _ := setupNoticeServiceWithFormMocks(t)

	mockNotice.EXPECT().GetByID(uint(1)).Return(notice.Notice{ID: 1, HasForm: false}, nil)

	_, err := svc.GetForm(1)
	assert.ErrorIs(t, err, ErrNoForm)
}

func TestGetForm_DefinitionRowMissing(t *testing.T) {
	svc, mockNotice, mockForm := setupNoticeServiceWithFormMocks(t)

	mockNotice.EXPECT().GetByID(uint(1)).Return(notice.Notice{ID: 1, HasForm: true}, nil)
	mockForm.EXPECT().GetByNoticeID(uint(1)).Return(form.Definition{}, gorm.ErrRecordNotFound)

	_, err := svc.GetForm(1)
	assert.ErrorIs(t, err, ErrNoForm)
}

func TestGetForm_NoticeNotFound(t *testing.T) {
	svc, mockNotice, _ := setupNoticeServiceWithFormMocks(t)

	mockNotice.EXPECT().GetByID(uint(9)).Return(notice.Notice{}, gorm.ErrRecordNotFound)

	_, err := svc.GetForm(9)
	assert.ErrorIs(t, err, ErrNoticeNotFound)
}

// --------------------- DetachForm ---------------------
func TestDetachForm_NoForm(t *testing.T) {
	svc, mockNotice := setupNoticeServiceMocks(t)

	mockNotice.EXPECT().GetByID(uint(1)).Return(notice.Notice{ID: 1, HasForm: false}, nil)

	err := svc.DetachForm(1)
	assert.ErrorIs(t, err, ErrNoForm)
}

// --------------------- Delete ---------------------
func TestDeleteNotice_NotFound(t *testing.T) {
	svc, mockNotice := setupNoticeServiceMocks(t)

	mockNotice.EXPECT().GetByID(uint(3)).Return(notice.Notice{}, errors.New("boom"))

	err := svc.Delete(3)
	assert.Error(t, err)
}
