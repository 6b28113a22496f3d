package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_AddField(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldText, Label: "Name", Required: true})
	b.AddField(FieldCandidate{Type: FieldRadio, Label: "Shirt Size", Options: []string{"S", "M", "L"}})

	def := b.Definition()
	assert.Len(t, def.Fields, 2)
	assert.Equal(t, uint(1), def.Fields[0].ID)
	assert.Equal(t, uint(2), def.Fields[1].ID)
	assert.Equal(t, "Name", def.Fields[0].Label)
	assert.True(t, def.Fields[0].Required)
	assert.Equal(t, []string{"S", "M", "L"}, []string(def.Fields[1].Options))
}

func TestBuilder_AddField_EmptyLabelIgnored(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldText, Label: ""})
	b.AddField(FieldCandidate{Type: FieldText, Label: "   "})
	b.AddField(FieldCandidate{Type: FieldText, Label: "\t\n"})

	assert.Empty(t, b.Definition().Fields)
}

func TestBuilder_AddField_LabelTrimmed(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldText, Label: "  Name  "})

	assert.Equal(t, "Name", b.Definition().Fields[0].Label)
}

func TestBuilder_AddField_OptionsDroppedForNonOptionTypes(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldText, Label: "Name", Options: []string{"stray"}})

	assert.Empty(t, b.Definition().Fields[0].Options)
}

func TestBuilder_RemoveField(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldText, Label: "A"})
	b.AddField(FieldCandidate{Type: FieldText, Label: "B"})
	b.AddField(FieldCandidate{Type: FieldText, Label: "C"})

	b.RemoveField(2)

	def := b.Definition()
	assert.Len(t, def.Fields, 2)
	assert.Equal(t, "A", def.Fields[0].Label)
	assert.Equal(t, "C", def.Fields[1].Label)
	assert.Equal(t, 0, def.Fields[0].Position)
	assert.Equal(t, 1, def.Fields[1].Position)
}

func TestBuilder_RemoveField_AbsentIDIsNoOp(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldText, Label: "A"})
	b.AddField(FieldCandidate{Type: FieldText, Label: "B"})

	before := b.Definition()
	b.RemoveField(99)
	after := b.Definition()

	assert.Equal(t, before, after)
}

func TestBuilder_FieldIDsNeverReused(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldText, Label: "A"})
	b.AddField(FieldCandidate{Type: FieldText, Label: "B"})
	b.RemoveField(2)
	b.AddField(FieldCandidate{Type: FieldText, Label: "C"})

	def := b.Definition()
	assert.Equal(t, uint(3), def.Fields[1].ID)
}

func TestBuilder_UpdateField(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldText, Label: "Name"})

	newLabel := "Full Name"
	required := true
	b.UpdateField(1, FieldPatch{Label: &newLabel, Required: &required})

	f := b.Definition().Fields[0]
	assert.Equal(t, "Full Name", f.Label)
	assert.True(t, f.Required)
	assert.Equal(t, FieldText, f.Type)
}

func TestBuilder_UpdateField_TypeChangeClearsOptions(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldRadio, Label: "Size", Options: []string{"S", "M"}})

	text := FieldText
	b.UpdateField(1, FieldPatch{Type: &text})

	f := b.Definition().Fields[0]
	assert.Equal(t, FieldText, f.Type)
	assert.Empty(t, f.Options)
}

func TestBuilder_Options(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldCheckbox, Label: "Toppings"})

	b.AddOption(1, "Cheese")
	b.AddOption(1, "  ")
	b.AddOption(1, "")
	b.AddOption(1, "Olives")
	b.AddOption(99, "Nope")

	assert.Equal(t, []string{"Cheese", "Olives"}, []string(b.Definition().Fields[0].Options))

	b.RemoveOption(1, 0)
	assert.Equal(t, []string{"Olives"}, []string(b.Definition().Fields[0].Options))

	b.RemoveOption(1, 5)
	b.RemoveOption(1, -1)
	assert.Equal(t, []string{"Olives"}, []string(b.Definition().Fields[0].Options))
}

func TestBuilder_AddOption_IgnoredOnNonOptionField(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldText, Label: "Name"})

	b.AddOption(1, "Cheese")

	assert.Empty(t, b.Definition().Fields[0].Options)
}

func TestBuilder_Tags_Idempotent(t *testing.T) {
	b := NewBuilder()
	b.AddTag("sports")
	b.AddTag("sports")
	b.AddTag(" sports ")

	assert.Equal(t, []string{"sports"}, []string(b.Definition().Tags))
}

func TestBuilder_Tags_EmptyIgnored(t *testing.T) {
	b := NewBuilder()
	b.AddTag("")
	b.AddTag("   ")

	assert.Empty(t, b.Definition().Tags)
}

func TestBuilder_RemoveTag(t *testing.T) {
	b := NewBuilder()
	b.AddTag("sports")
	b.AddTag("youth")

	b.RemoveTag("sports")
	assert.Equal(t, []string{"youth"}, []string(b.Definition().Tags))

	b.RemoveTag("absent")
	assert.Equal(t, []string{"youth"}, []string(b.Definition().Tags))
}

func TestBuilder_SnapshotIsDeepCopy(t *testing.T) {
	b := NewBuilder()
	b.AddField(FieldCandidate{Type: FieldRadio, Label: "Size", Options: []string{"S"}})
	b.AddTag("sports")

	snap := b.Definition()
	b.AddOption(1, "M")
	b.AddTag("youth")
	b.AddField(FieldCandidate{Type: FieldText, Label: "Name"})

	assert.Len(t, snap.Fields, 1)
	assert.Equal(t, []string{"S"}, []string(snap.Fields[0].Options))
	assert.Equal(t, []string{"sports"}, []string(snap.Tags))
}

func TestEditBuilder_ResumesIDCounter(t *testing.T) {
	def := Definition{Fields: []Field{
		{ID: 4, Label: "A", Type: FieldText, Position: 0},
		{ID: 7, Label: "B", Type: FieldText, Position: 1},
	}}

	b := EditBuilder(def)
	b.AddField(FieldCandidate{Type: FieldText, Label: "C"})

	fields := b.Definition().Fields
	assert.Equal(t, uint(8), fields[2].ID)
}

func TestEditBuilder_DoesNotAliasInput(t *testing.T) {
	def := Definition{Fields: []Field{
		{ID: 1, Label: "A", Type: FieldRadio, Options: []string{"x"}},
	}}

	b := EditBuilder(def)
	b.AddOption(1, "y")

	assert.Equal(t, []string{"x"}, []string(def.Fields[0].Options))
}

func TestBuilder_Metadata(t *testing.T) {
	b := NewBuilder()
	b.SetTitle("Signup")
	b.SetDescription("Event signup form")

	def := b.Definition()
	assert.Equal(t, "Signup", def.Title)
	assert.Equal(t, "Event signup form", def.Description)
}
