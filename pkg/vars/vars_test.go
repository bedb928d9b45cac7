package vars_test

import (
	"testing"

	"github.com/tchecker-go/tchecker/pkg/util/assert"
	"github.com/tchecker-go/tchecker/pkg/vars"
)

func TestNewIntVars_FlatOffsets(t *testing.T) {
	c := vars.NewIntVars([]vars.IntVarDecl{
		{Name: "i", Size: 1},
		{Name: "a", Size: 4},
		{Name: "j", Size: 1},
	})

	i, ok := c.Lookup("i")
	assert.True(t, ok)
	assert.Equal(t, 0, i.Offset)

	a, ok := c.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, a.Offset)

	j, ok := c.Lookup("j")
	assert.True(t, ok)
	assert.Equal(t, 5, j.Offset)

	assert.Equal(t, 6, c.FrameSize())
}

func TestNewIntVars_UnknownLookupFails(t *testing.T) {
	c := vars.NewIntVars(nil)
	_, ok := c.Lookup("nope")
	assert.False(t, ok)
	assert.Equal(t, 0, c.FrameSize())
}

func TestNewClocks_FlatOffsets(t *testing.T) {
	c := vars.NewClocks([]vars.ClockDecl{
		{Name: "x", Size: 1},
		{Name: "y", Size: 3},
	})

	x, ok := c.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 0, x.Offset)

	y, ok := c.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, 1, y.Offset)

	assert.Equal(t, 4, c.FrameSize())
}

func TestGet_ById(t *testing.T) {
	c := vars.NewIntVars([]vars.IntVarDecl{{Name: "i", Size: 1}})
	v := c.Get(0)
	assert.Equal(t, "i", v.Name)
}
