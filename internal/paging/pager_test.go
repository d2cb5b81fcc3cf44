package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"default", 50, 50},
		{"custom", 20, 20},
		{"zero falls back", 0, DefaultPageSize},
		{"negative falls back", -3, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.size)
			assert.Equal(t, tt.want, p.Visible())
			assert.Equal(t, tt.want, p.Size())
		})
	}
}

func TestPager_LoadMoreIsMonotonic(t *testing.T) {
	p := New(50)
	prev := p.Visible()
	for i := 0; i < 10; i++ {
		p.LoadMore()
		assert.Equal(t, prev+50, p.Visible())
		prev = p.Visible()
	}
}

func TestPager_WindowClamps(t *testing.T) {
	p := New(50)

	assert.Equal(t, 0, p.Window(0))
	assert.Equal(t, 30, p.Window(30))
	assert.Equal(t, 50, p.Window(50))
	assert.Equal(t, 50, p.Window(500))
	assert.Equal(t, 0, p.Window(-1))
}

func TestPager_HasMore(t *testing.T) {
	p := New(50)

	assert.False(t, p.HasMore(0))
	assert.False(t, p.HasMore(50))
	assert.True(t, p.HasMore(51))
}

func TestPager_LoadMorePastEnd(t *testing.T) {
	items := make([]int, 120)
	for i := range items {
		items[i] = i
	}

	p := New(50)
	assert.Len(t, Page(items, p), 50)
	assert.True(t, p.HasMore(len(items)))

	p.LoadMore()
	p.LoadMore()

	assert.Equal(t, 150, p.Visible())
	assert.Len(t, Page(items, p), 120)
	assert.False(t, p.HasMore(len(items)))
}

func TestPager_VisibleSurvivesShrinkingResults(t *testing.T) {
	p := New(50)
	p.LoadMore()

	// Filter narrows to 10 rows, then widens again
	assert.Equal(t, 10, p.Window(10))
	assert.Equal(t, 100, p.Visible())
	assert.Equal(t, 100, p.Window(300))
}

func TestPager_Reset(t *testing.T) {
	p := New(25)
	p.LoadMore()
	p.LoadMore()
	p.Reset()
	assert.Equal(t, 25, p.Visible())
}

func TestPage_Empty(t *testing.T) {
	var items []string
	assert.Empty(t, Page(items, New(50)))
}
