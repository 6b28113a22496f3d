package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyLabel        = fmt.Errorf("field label is empty")
	ErrDuplicateLabel    = fmt.Errorf("duplicate field label")
	ErrUnknownFieldType  = fmt.Errorf("unknown field type")
	ErrOptionsNotAllowed = fmt.Errorf("options only allowed on radio and checkbox fields")
	ErrNoOptions         = fmt.Errorf("option field needs at least one option")

	ErrFormClosed       = fmt.Errorf("form is not accepting submissions")
	ErrMissingRequired  = fmt.Errorf("missing required answer")
	ErrUnknownAnswerKey = fmt.Errorf("answer key matches no field")
	ErrInvalidAnswer    = fmt.Errorf("invalid answer value")
	ErrOptionNotInList  = fmt.Errorf("answer is not one of the field's options")
)

// BuildDefinition validates a DefinitionInput and converts it into a
// Definition value ready to persist. Labels are trimmed; they must be
// non-empty and unique within the definition, options may only appear on
// option-bearing types, and an option-bearing field needs at least one
// non-empty option.
func BuildDefinition(input DefinitionInput) (Definition, error) {
	def := Definition{
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	for _, t := range input.Tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		dup := false
		for _, existing := range def.Tags {
			if existing == t {
				dup = true
				break
			}
		}
		if !dup {
			def.Tags = append(def.Tags, t)
		}
	}

	seen := map[string]bool{}
	for i, in := range input.Fields {
		label := strings.TrimSpace(in.Label)
		if label == "" {
			return Definition{}, fmt.Errorf("field %d: %w", i+1, ErrEmptyLabel)
		}
		if seen[label] {
			return Definition{}, fmt.Errorf("field %q: %w", label, ErrDuplicateLabel)
		}
		seen[label] = true

		if !in.Type.Valid() {
			return Definition{}, fmt.Errorf("field %q: %w: %q", label, ErrUnknownFieldType, in.Type)
		}

		f := Field{
			Position: i,
			Type:     in.Type,
			Label:    label,
			Required: in.Required,
		}
		if in.Type.HasOptions() {
			for _, opt := range in.Options {
				opt = strings.TrimSpace(opt)
				if opt != "" {
					f.Options = append(f.Options, opt)
				}
			}
			if len(f.Options) == 0 {
				return Definition{}, fmt.Errorf("field %q: %w", label, ErrNoOptions)
			}
		} else if len(in.Options) > 0 {
			return Definition{}, fmt.Errorf("field %q: %w", label, ErrOptionsNotAllowed)
		}
		def.Fields = append(def.Fields, f)
	}

	return def, nil
}

// ValidateSubmission checks a visitor's answers against the definition they
// were submitted to: the window must be open, every required field must have
// a non-empty answer, every answer key must match a current field label, and
// typed fields must parse. Stray keys can therefore only arise later, when
// an admin replaces the form.
func ValidateSubmission(def *Definition, input SubmissionInput, at time.Time) error {
	if !def.Open(at) {
		return ErrFormClosed
	}

	for key := range input.Answers {
		if def.FieldByLabel(key) == nil {
			return fmt.Errorf("%w: %q", ErrUnknownAnswerKey, key)
		}
	}

	for _, f := range def.Fields {
		raw, present := input.Answers[f.Label]
		values := AnswerStrings(raw)
		if present && raw != nil && values == nil {
			return fmt.Errorf("%w: %q", ErrInvalidAnswer, f.Label)
		}

		if f.Required && (!present || len(values) == 0 || allBlank(values)) {
			return fmt.Errorf("%w: %q", ErrMissingRequired, f.Label)
		}
		if !present || len(values) == 0 {
			continue
		}

		if !f.Type.Multi() && len(values) > 1 {
			return fmt.Errorf("%w: %q expects a single value", ErrInvalidAnswer, f.Label)
		}

		for _, v := range values {
			if err := checkValue(f, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkValue(f Field, v string) error {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	switch f.Type {
	case FieldRadio, FieldCheckbox:
		for _, opt := range f.Options {
			if opt == v {
				return nil
			}
		}
		return fmt.Errorf("%w: %q = %q", ErrOptionNotInList, f.Label, v)
	case FieldNumber:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrInvalidAnswer, f.Label)
		}
	case FieldEmail:
		if !strings.Contains(v, "@") {
			return fmt.Errorf("%w: %q is not an email address", ErrInvalidAnswer, f.Label)
		}
	case FieldDate:
		if _, err := time.Parse("2006-01-02", v); err != nil {
			return fmt.Errorf("%w: %q is not a date", ErrInvalidAnswer, f.Label)
		}
	}
	return nil
}

func allBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
