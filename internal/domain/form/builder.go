package form

import (
	"strings"
	"time"
)

// Builder assembles a Definition draft in memory. Every operation is a
// synchronous, local mutation with no I/O and no error return: invalid input
// (empty label, empty option, duplicate tag) is silently ignored so the
// caller can simply re-attempt with corrected input. Persistence belongs to
// whoever receives the snapshot from Definition().
//
// Field IDs are assigned from a counter that only moves forward, so an ID is
// never reused after its field is removed.
type Builder struct {
	def    Definition
	nextID uint
}

// NewBuilder starts an empty draft.
func NewBuilder() *Builder {
	return &Builder{nextID: 1}
}

// EditBuilder starts a draft from an existing definition, e.g. when an admin
// reopens a notice's form. The ID counter resumes past the highest existing
// field ID.
func EditBuilder(def Definition) *Builder {
	b := &Builder{def: cloneDefinition(def), nextID: 1}
	for _, f := range b.def.Fields {
		if f.ID >= b.nextID {
			b.nextID = f.ID + 1
		}
	}
	return b
}

// FieldCandidate is the builder-side input for a new field; the builder
// assigns the ID.
type FieldCandidate struct {
	Type     FieldType
	Label    string
	Required bool
	Options  []string
}

// FieldPatch is a partial update; nil members are left untouched.
type FieldPatch struct {
	Type     *FieldType
	Label    *string
	Required *bool
}

func (b *Builder) SetTitle(title string)      { b.def.Title = title }
func (b *Builder) SetDescription(desc string) { b.def.Description = desc }

// SetWindow sets the validity window; either bound may be nil.
func (b *Builder) SetWindow(start, end *time.Time) {
	b.def.StartDate = start
	b.def.EndDate = end
}

// AddField appends a field with a freshly assigned ID. The label is the only
// property required at add time; a field whose trimmed label is empty is
// ignored.
func (b *Builder) AddField(candidate FieldCandidate) {
	label := strings.TrimSpace(candidate.Label)
	if label == "" {
		return
	}

	f := Field{
		ID:       b.nextID,
		Position: len(b.def.Fields),
		Type:     candidate.Type,
		Label:    label,
		Required: candidate.Required,
	}
	if candidate.Type.HasOptions() {
		f.Options = append(f.Options, candidate.Options...)
	}
	b.nextID++
	b.def.Fields = append(b.def.Fields, f)
}

// RemoveField drops the field with the given ID, keeping the order of the
// remaining fields. Removing an absent ID is a no-op.
func (b *Builder) RemoveField(id uint) {
	for i := range b.def.Fields {
		if b.def.Fields[i].ID == id {
			b.def.Fields = append(b.def.Fields[:i], b.def.Fields[i+1:]...)
			for j := range b.def.Fields {
				b.def.Fields[j].Position = j
			}
			return
		}
	}
}

// UpdateField merges a patch into the named field. No validation happens
// here; whole-definition validation is owned by the caller at save time.
func (b *Builder) UpdateField(id uint, patch FieldPatch) {
	f := b.field(id)
	if f == nil {
		return
	}
	if patch.Type != nil {
		f.Type = *patch.Type
		if !f.Type.HasOptions() {
			f.Options = nil
		}
	}
	if patch.Label != nil {
		f.Label = *patch.Label
	}
	if patch.Required != nil {
		f.Required = *patch.Required
	}
}

// AddOption appends an option to a radio/checkbox field. Empty or
// whitespace-only text is ignored, as is a field that does not carry
// options.
func (b *Builder) AddOption(fieldID uint, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	f := b.field(fieldID)
	if f == nil || !f.Type.HasOptions() {
		return
	}
	f.Options = append(f.Options, text)
}

// RemoveOption drops the option at index. Out-of-range indexes are ignored.
func (b *Builder) RemoveOption(fieldID uint, index int) {
	f := b.field(fieldID)
	if f == nil || index < 0 || index >= len(f.Options) {
		return
	}
	f.Options = append(f.Options[:index], f.Options[index+1:]...)
}

// AddTag appends a tag unless its trimmed text is empty or already present.
// A linear scan is fine at this scale.
func (b *Builder) AddTag(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	for _, t := range b.def.Tags {
		if t == text {
			return
		}
	}
	b.def.Tags = append(b.def.Tags, text)
}

// RemoveTag removes a tag by value.
func (b *Builder) RemoveTag(text string) {
	for i, t := range b.def.Tags {
		if t == text {
			b.def.Tags = append(b.def.Tags[:i], b.def.Tags[i+1:]...)
			return
		}
	}
}

// Definition returns a deep-copy snapshot of the draft. Later builder
// mutations do not leak into snapshots already handed out.
func (b *Builder) Definition() Definition {
	return cloneDefinition(b.def)
}

func (b *Builder) field(id uint) *Field {
	for i := range b.def.Fields {
		if b.def.Fields[i].ID == id {
			return &b.def.Fields[i]
		}
	}
	return nil
}

func cloneDefinition(def Definition) Definition {
	out := def
	out.Tags = append(out.Tags[:0:0], def.Tags...)
	out.Fields = make([]Field, len(def.Fields))
	for i, f := range def.Fields {
		out.Fields[i] = f
		out.Fields[i].Options = append(f.Options[:0:0], f.Options...)
	}
	return out
}
