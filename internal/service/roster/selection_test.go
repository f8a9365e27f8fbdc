package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Toggle(t *testing.T) {
	sel := NewSelection()

	assert.True(t, sel.Toggle("e1"))
	assert.True(t, sel.Has("e1"))

	assert.False(t, sel.Toggle("e1"))
	assert.False(t, sel.Has("e1"))
	assert.Zero(t, sel.Count())
}

func TestSelection_SurvivesFilterChanges(t *testing.T) {
	sel := NewSelection()

	// Pick two employees while a "female" filter shows e1 and e2.
	sel.Add("e1", "e2")

	// The admin switches to a different filter and selects more; the earlier
	// picks are untouched because the selection is keyed by id alone.
	sel.Add("e7")

	assert.Equal(t, []string{"e1", "e2", "e7"}, sel.IDs())
	assert.True(t, sel.Has("e1"))
	assert.Equal(t, 3, sel.Count())
}

func TestSelection_AddIsIdempotent(t *testing.T) {
	sel := NewSelection()

	sel.Add("e1", "e2")
	sel.Add("e2", "e3")

	assert.Equal(t, []string{"e1", "e2", "e3"}, sel.IDs())
}

func TestSelection_Remove(t *testing.T) {
	sel := NewSelection()

	sel.Add("e1", "e2", "e3")
	sel.Remove("e2", "e9")

	assert.Equal(t, []string{"e1", "e3"}, sel.IDs())
}

func TestSelection_Clear(t *testing.T) {
	sel := NewSelection()

	sel.Add("e1", "e2")
	sel.Clear()

	assert.Empty(t, sel.IDs())
	assert.Zero(t, sel.Count())
}
