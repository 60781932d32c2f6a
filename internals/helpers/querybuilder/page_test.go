package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	t.Run("Should report last_page 1 for an empty collection", func(t *testing.T) {
		p := NewPage[int](nil, 0, 1, 10)
		assert.Equal(t, 1, p.LastPage)
		assert.Equal(t, 0, p.From)
		assert.Equal(t, 0, p.To)
		assert.NotNil(t, p.Items)
	})

	t.Run("Should compute the inclusive range of a middle page", func(t *testing.T) {
		p := NewPage([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 35, 2, 10)
		assert.Equal(t, 11, p.From)
		assert.Equal(t, 20, p.To)
		assert.Equal(t, 4, p.LastPage)
	})
}

func TestMapPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 12, 2, 10)
	out := MapPage(p, func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, []string{"b", "c"}, out.Items)
	assert.Equal(t, p.From, out.From)
	assert.Equal(t, p.To, out.To)
	assert.Equal(t, p.LastPage, out.LastPage)
	assert.EqualValues(t, 12, out.Total)
}

func TestIsAllowedPerPage(t *testing.T) {
	for _, n := range AllowedPerPage {
		assert.True(t, IsAllowedPerPage(n))
	}
	assert.False(t, IsAllowedPerPage(15))
	assert.False(t, IsAllowedPerPage(0))
}
