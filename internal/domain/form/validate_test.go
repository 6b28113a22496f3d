package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildDefinition(t *testing.T) {
	def, err := BuildDefinition(DefinitionInput{
		Title: "Signup",
		Tags:  []string{"sports", " sports", "", "youth"},
		Fields: []FieldInput{
			{Type: FieldText, Label: " Name ", Required: true},
			{Type: FieldRadio, Label: "Size", Options: []string{"S", " ", "M"}},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"sports", "youth"}, []string(def.Tags))
	assert.Equal(t, "Name", def.Fields[0].Label)
	assert.Equal(t, 0, def.Fields[0].Position)
	assert.Equal(t, 1, def.Fields[1].Position)
	assert.Equal(t, []string{"S", "M"}, []string(def.Fields[1].Options))
}

func TestBuildDefinition_EmptyLabel(t *testing.T) {
	_, err := BuildDefinition(DefinitionInput{
		Fields: []FieldInput{{Type: FieldText, Label: "  "}},
	})
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestBuildDefinition_DuplicateLabel(t *testing.T) {
	_, err := BuildDefinition(DefinitionInput{
		Fields: []FieldInput{
			{Type: FieldText, Label: "Name"},
			{Type: FieldEmail, Label: " Name"},
		},
	})
	assert.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestBuildDefinition_UnknownType(t *testing.T) {
	_, err := BuildDefinition(DefinitionInput{
		Fields: []FieldInput{{Type: "dropdown", Label: "Pick"}},
	})
	assert.ErrorIs(t, err, ErrUnknownFieldType)
}

func TestBuildDefinition_OptionsOnPlainField(t *testing.T) {
	_, err := BuildDefinition(DefinitionInput{
		Fields: []FieldInput{{Type: FieldText, Label: "Name", Options: []string{"x"}}},
	})
	assert.ErrorIs(t, err, ErrOptionsNotAllowed)
}

func TestBuildDefinition_OptionFieldWithoutOptions(t *testing.T) {
	_, err := BuildDefinition(DefinitionInput{
		Fields: []FieldInput{{Type: FieldCheckbox, Label: "Pick", Options: []string{"  "}}},
	})
	assert.ErrorIs(t, err, ErrNoOptions)
}

func signupDefinition() *Definition {
	return &Definition{
		Fields: []Field{
			{ID: 1, Label: "Name", Type: FieldText, Required: true},
			{ID: 2, Label: "Shirt Size", Type: FieldRadio, Options: []string{"S", "M", "L"}},
			{ID: 3, Label: "Toppings", Type: FieldCheckbox, Options: []string{"Cheese", "Ham"}},
			{ID: 4, Label: "Age", Type: FieldNumber},
			{ID: 5, Label: "Contact", Type: FieldEmail},
			{ID: 6, Label: "Birthday", Type: FieldDate},
		},
	}
}

func now() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

func TestValidateSubmission_OK(t *testing.T) {
	err := ValidateSubmission(signupDefinition(), SubmissionInput{
		Name:  "Ann",
		Email: "ann@example.com",
		Answers: map[string]any{
			"Name":       "Ann",
			"Shirt Size": "M",
			"Toppings":   []any{"Cheese"},
			"Age":        "29",
			"Contact":    "ann@example.com",
			"Birthday":   "1996-04-02",
		},
	}, now())
	assert.NoError(t, err)
}

func TestValidateSubmission_OptionalFieldsMayBeAbsent(t *testing.T) {
	err := ValidateSubmission(signupDefinition(), SubmissionInput{
		Name:    "Ann",
		Email:   "ann@example.com",
		Answers: map[string]any{"Name": "Ann"},
	}, now())
	assert.NoError(t, err)
}

func TestValidateSubmission_MissingRequired(t *testing.T) {
	def := signupDefinition()

	err := ValidateSubmission(def, SubmissionInput{Answers: map[string]any{}}, now())
	assert.ErrorIs(t, err, ErrMissingRequired)

	err = ValidateSubmission(def, SubmissionInput{Answers: map[string]any{"Name": "   "}}, now())
	assert.ErrorIs(t, err, ErrMissingRequired)
}

func TestValidateSubmission_UnknownAnswerKeyRejected(t *testing.T) {
	err := ValidateSubmission(signupDefinition(), SubmissionInput{
		Answers: map[string]any{"Name": "Ann", "Ghost Field": "boo"},
	}, now())
	assert.ErrorIs(t, err, ErrUnknownAnswerKey)
}

func TestValidateSubmission_RadioOutsideOptions(t *testing.T) {
	err := ValidateSubmission(signupDefinition(), SubmissionInput{
		Answers: map[string]any{"Name": "Ann", "Shirt Size": "XXL"},
	}, now())
	assert.ErrorIs(t, err, ErrOptionNotInList)
}

func TestValidateSubmission_CheckboxSubsetOfOptions(t *testing.T) {
	err := ValidateSubmission(signupDefinition(), SubmissionInput{
		Answers: map[string]any{"Name": "Ann", "Toppings": []any{"Cheese", "Anchovies"}},
	}, now())
	assert.ErrorIs(t, err, ErrOptionNotInList)
}

func TestValidateSubmission_SingleValueFieldRejectsList(t *testing.T) {
	err := ValidateSubmission(signupDefinition(), SubmissionInput{
		Answers: map[string]any{"Name": "Ann", "Shirt Size": []any{"S", "M"}},
	}, now())
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestValidateSubmission_TypedValues(t *testing.T) {
	def := signupDefinition()

	err := ValidateSubmission(def, SubmissionInput{
		Answers: map[string]any{"Name": "Ann", "Age": "not-a-number"},
	}, now())
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	err = ValidateSubmission(def, SubmissionInput{
		Answers: map[string]any{"Name": "Ann", "Contact": "no-at-sign"},
	}, now())
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	err = ValidateSubmission(def, SubmissionInput{
		Answers: map[string]any{"Name": "Ann", "Birthday": "April 2nd"},
	}, now())
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestValidateSubmission_NonStringAnswerValue(t *testing.T) {
	err := ValidateSubmission(signupDefinition(), SubmissionInput{
		Answers: map[string]any{"Name": "Ann", "Age": 29.0},
	}, now())
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestValidateSubmission_Window(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	def := signupDefinition()
	def.StartDate = &start
	def.EndDate = &end

	input := SubmissionInput{Answers: map[string]any{"Name": "Ann"}}

	assert.ErrorIs(t, ValidateSubmission(def, input, start.Add(-time.Hour)), ErrFormClosed)
	assert.ErrorIs(t, ValidateSubmission(def, input, end.Add(time.Hour)), ErrFormClosed)
	assert.NoError(t, ValidateSubmission(def, input, start.Add(24*time.Hour)))
}

func TestDefinition_Open_UnboundedSides(t *testing.T) {
	def := &Definition{}
	assert.True(t, def.Open(now()))

	start := now().Add(time.Hour)
	def.StartDate = &start
	assert.False(t, def.Open(now()))

	def.StartDate = nil
	end := now().Add(-time.Hour)
	def.EndDate = &end
	assert.False(t, def.Open(now()))
}
