package form

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// FieldType is the closed set of input kinds a form field can take.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldRadio    FieldType = "radio"
	FieldCheckbox FieldType = "checkbox"
	FieldFile     FieldType = "file"
	FieldDate     FieldType = "date"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldTextarea, FieldEmail, FieldNumber,
		FieldRadio, FieldCheckbox, FieldFile, FieldDate:
		return true
	}
	return false
}

// HasOptions reports whether the type carries an option list.
func (t FieldType) HasOptions() bool {
	return t == FieldRadio || t == FieldCheckbox
}

// Multi reports whether the answer value is a list rather than a single
// string.
func (t FieldType) Multi() bool {
	return t == FieldCheckbox
}

// Field describes one form input. The label doubles as the answer key in a
// submission, so labels must be unique within a definition; the notice
// service enforces that when a definition is attached.
type Field struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	DefinitionID uint                        `json:"-" gorm:"index"`
	Position     int                         `json:"position"`
	Type         FieldType                   `json:"type" gorm:"size:20"`
	Label        string                      `json:"label" gorm:"size:255"`
	Required     bool                        `json:"required"`
	Options      datatypes.JSONSlice[string] `json:"options"`
}

// Definition is the shape of one form: ordered fields plus metadata. It is
// owned by exactly one notice.
type Definition struct {
	ID          uint                        `json:"id" gorm:"primaryKey"`
	NoticeID    uint                        `json:"notice_id" gorm:"index"`
	Title       string                      `json:"title"`
	Description string                      `json:"description" gorm:"type:text"`
	StartDate   *time.Time                  `json:"start_date"`
	EndDate     *time.Time                  `json:"end_date"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Fields      []Field                     `json:"fields" gorm:"foreignKey:DefinitionID"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// FieldByLabel returns the field with the given label, or nil.
func (d *Definition) FieldByLabel(label string) *Field {
	for i := range d.Fields {
		if d.Fields[i].Label == label {
			return &d.Fields[i]
		}
	}
	return nil
}

// Open reports whether the definition accepts submissions at the given time.
// A missing bound is unbounded on that side.
func (d *Definition) Open(at time.Time) bool {
	if d.StartDate != nil && at.Before(*d.StartDate) {
		return false
	}
	if d.EndDate != nil && at.After(*d.EndDate) {
		return false
	}
	return true
}

// Submission is one respondent's answers against a definition snapshot,
// keyed by field label. Checkbox answers are string lists, everything else a
// single string. Submissions are created once and never mutated.
type Submission struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	NoticeID  uint              `json:"notice_id" gorm:"index"`
	Name      string            `json:"name" gorm:"size:255"`
	Email     string            `json:"email" gorm:"size:255"`
	Answers   datatypes.JSONMap `json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
}

// AnswerStrings normalizes a raw answer value into its string parts.
// Unrecognized values yield nil.
func AnswerStrings(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// AnswerCell renders a raw answer value for one table cell. List answers are
// comma-joined; missing or unrecognized values render as "".
func AnswerCell(v any) string {
	parts := AnswerStrings(v)
	if parts == nil {
		return ""
	}
	return strings.Join(parts, ", ")
}
