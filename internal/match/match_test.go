package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCandidates(t *testing.T) {
	cs := MockCandidates()
	require.Len(t, cs, 5)

	names := []string{}
	for _, c := range cs {
		names = append(names, c.Name)
		assert.NotEmpty(t, c.PhotoURL)
	}
	assert.Equal(t, []string{"Sophia", "Liam", "Chloe", "Ethan", "Ava"}, names)
	assert.Equal(t, 141, cs[2].Score)
}

func TestDeck_SwipeThrough(t *testing.T) {
	d := NewDeck(MockCandidates())
	assert.Equal(t, 5, d.Remaining())

	c, ok := d.Current()
	require.True(t, ok)
	assert.Equal(t, "Sophia", c.Name)

	d.Swipe(Like)
	d.Swipe(Pass)
	d.Swipe(Like)
	d.Swipe(Pass)
	assert.False(t, d.Done())
	d.Swipe(Pass)

	assert.True(t, d.Done())
	assert.Equal(t, 0, d.Remaining())
	_, ok = d.Current()
	assert.False(t, ok)

	liked := d.Liked()
	require.Len(t, liked, 2)
	assert.Equal(t, "Sophia", liked[0].Name)
	assert.Equal(t, "Chloe", liked[1].Name)

	// Swiping an empty deck does nothing.
	d.Swipe(Like)
	assert.Len(t, d.Liked(), 2)
}

func TestDeck_CopiesInput(t *testing.T) {
	src := MockCandidates()
	d := NewDeck(src)
	src[0].Name = "changed"

	c, _ := d.Current()
	assert.Equal(t, "Sophia", c.Name)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "like", Like.String())
	assert.Equal(t, "pass", Pass.String())
}
