package form

import "time"

// FieldInput is the wire shape for one field when a definition is attached
// to a notice.
type FieldInput struct {
	Type     FieldType `json:"type" binding:"required"`
	Label    string    `json:"label" binding:"required"`
	Required bool      `json:"required"`
	Options  []string  `json:"options"`
}

// DefinitionInput is the wire shape for attaching or replacing a notice's
// form.
type DefinitionInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	StartDate   *time.Time   `json:"start_date"`
	EndDate     *time.Time   `json:"end_date"`
	Tags        []string     `json:"tags"`
	Fields      []FieldInput `json:"fields" binding:"required"`
}

// SubmissionInput is the wire shape for a visitor submission.
type SubmissionInput struct {
	Name    string         `json:"name" binding:"required"`
	Email   string         `json:"email" binding:"required"`
	Answers map[string]any `json:"answers"`
}
