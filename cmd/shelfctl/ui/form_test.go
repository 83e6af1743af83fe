package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfctl/internal/catalog"
)

func authorFields() []catalog.Field {
	return []catalog.Field{
		{Key: "author_name", Label: "Author Name", Kind: catalog.FieldText, Required: true},
		{Key: "country", Label: "Country", Kind: catalog.FieldSelect, Options: []catalog.Option{
			{Value: "United Kingdom", Text: "United Kingdom"},
			{Value: "Colombia", Text: "Colombia"},
		}},
		{Key: "address", Label: "Address", Kind: catalog.FieldTextarea},
	}
}

// tabToSave moves focus from the first field onto the Save button.
func tabToSave(f Form) Form {
	for i := 0; i < len(authorFields()); i++ {
		f, _ = f.Update(key("tab"))
	}
	return f
}

func TestFormSeedsValues(t *testing.T) {
	fields := authorFields()
	fields[0].Value = "Gabriel Garcia Marquez"
	fields[1].Value = "Colombia"
	f := NewForm(0, newFakePage(), 4, fields)

	values := f.Values()
	assert.Equal(t, "Gabriel Garcia Marquez", values["author_name"])
	assert.Equal(t, "Colombia", values["country"], "select seeds to the matching option")
	assert.Equal(t, "", values["address"])
	assert.Equal(t, "Edit author", f.Title())
}

func TestFormCreateMode(t *testing.T) {
	f := NewForm(0, newFakePage(), 0, authorFields())
	assert.Equal(t, "Add author", f.Title())
	assert.Equal(t, "", f.Values()["country"], "unseeded select has no value")
}

func TestFormTrimsValues(t *testing.T) {
	fields := authorFields()
	fields[0].Value = "  George Orwell  "
	f := NewForm(0, newFakePage(), 0, fields)

	assert.Equal(t, "George Orwell", f.Values()["author_name"])
}

func TestSubmitBlocksOnMissingRequired(t *testing.T) {
	f := NewForm(0, newFakePage(), 0, authorFields())
	f = tabToSave(f)

	f, cmd := f.Update(key("enter"))
	assert.Nil(t, cmd, "validation failure issues no save")
	assert.False(t, f.Saving())
	assert.Contains(t, f.View(DefaultStyles()), "Author Name is required")
}

func TestSubmitSavesTrimmedValues(t *testing.T) {
	fake := newFakePage()
	fields := authorFields()
	fields[0].Value = "  Jane Austen  "
	f := NewForm(0, fake, 0, fields)
	f = tabToSave(f)

	f, cmd := f.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.True(t, f.Saving())

	msg, ok := cmd().(saveDoneMsg)
	require.True(t, ok)
	assert.NoError(t, msg.err)
	assert.Equal(t, int64(0), msg.id)

	require.Len(t, fake.saves, 1)
	assert.Equal(t, int64(0), fake.saves[0].id)
	assert.Equal(t, "Jane Austen", fake.saves[0].values["author_name"])
}

func TestSubmitEditUsesRecordID(t *testing.T) {
	fake := newFakePage()
	fields := authorFields()
	fields[0].Value = "Jane Austen"
	f := NewForm(0, fake, 7, fields)
	f = tabToSave(f)

	_, cmd := f.Update(key("enter"))
	require.NotNil(t, cmd)
	msg := cmd().(saveDoneMsg)
	assert.Equal(t, int64(7), msg.id)
	require.Len(t, fake.saves, 1)
	assert.Equal(t, int64(7), fake.saves[0].id)
}

func TestSaveFailureKeepsFormState(t *testing.T) {
	fake := newFakePage()
	fake.saveErr = errors.New("author_name already exists")
	fields := authorFields()
	fields[0].Value = "Jane Austen"
	fields[1].Value = "United Kingdom"
	f := NewForm(0, fake, 0, fields)
	f = tabToSave(f)

	f, cmd := f.Update(key("enter"))
	require.NotNil(t, cmd)
	msg := cmd().(saveDoneMsg)
	assert.Error(t, msg.err)

	// The root model calls SaveFailed; the entered values survive.
	f.SaveFailed()
	assert.False(t, f.Saving())
	assert.Equal(t, "Jane Austen", f.Values()["author_name"])
	assert.Equal(t, "United Kingdom", f.Values()["country"])
}

func TestSavingBlocksInput(t *testing.T) {
	fake := newFakePage()
	fields := authorFields()
	fields[0].Value = "Jane Austen"
	f := NewForm(0, fake, 0, fields)
	f = tabToSave(f)
	f, _ = f.Update(key("enter"))
	require.True(t, f.Saving())

	_, cmd := f.Update(key("esc"))
	assert.Nil(t, cmd, "no dismissal while the save is in flight")
}

func TestEscDismissesForm(t *testing.T) {
	f := NewForm(3, newFakePage(), 0, authorFields())

	_, cmd := f.Update(key("esc"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(formDismissedMsg)
	require.True(t, ok)
	assert.Equal(t, 3, msg.page)
}

func TestCancelButtonDismisses(t *testing.T) {
	f := NewForm(0, newFakePage(), 0, authorFields())
	for i := 0; i < len(authorFields())+1; i++ {
		f, _ = f.Update(key("tab"))
	}

	_, cmd := f.Update(key("enter"))
	require.NotNil(t, cmd)
	_, ok := cmd().(formDismissedMsg)
	assert.True(t, ok)
}

func TestSelectFieldCycles(t *testing.T) {
	f := NewForm(0, newFakePage(), 0, authorFields())
	f, _ = f.Update(key("tab")) // onto the country select

	f, _ = f.Update(key("right"))
	assert.Equal(t, "United Kingdom", f.Values()["country"])
	f, _ = f.Update(key("right"))
	assert.Equal(t, "Colombia", f.Values()["country"])
	f, _ = f.Update(key("right"))
	assert.Equal(t, "United Kingdom", f.Values()["country"], "cycling wraps")
	f, _ = f.Update(key("left"))
	assert.Equal(t, "Colombia", f.Values()["country"])
}

func TestEnterOnFieldAdvancesFocus(t *testing.T) {
	fake := newFakePage()
	fields := authorFields()
	fields[0].Value = "Jane Austen"
	f := NewForm(0, fake, 0, fields)

	// Enter on each field walks forward without submitting.
	for i := 0; i < len(fields); i++ {
		var cmd tea.Cmd
		f, cmd = f.Update(key("enter"))
		assert.Nil(t, cmd)
	}
	assert.Empty(t, fake.saves)

	// Now on Save; enter submits.
	_, cmd := f.Update(key("enter"))
	require.NotNil(t, cmd)
	cmd()
	assert.Len(t, fake.saves, 1)
}
