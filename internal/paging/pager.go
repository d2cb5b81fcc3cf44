package paging

// DefaultPageSize is the initial window and the growth step.
const DefaultPageSize = 50

// Pager tracks how many filtered rows are revealed. The window only grows,
// except through an explicit Reset.
type Pager struct {
	size    int
	visible int
}

// New returns a pager revealing size rows. size <= 0 uses DefaultPageSize.
func New(size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{size: size, visible: size}
}

// Size returns the page step.
func (p *Pager) Size() int { return p.size }

// Visible returns the current window. It may exceed the number of rows.
func (p *Pager) Visible() int { return p.visible }

// LoadMore grows the window by one page.
func (p *Pager) LoadMore() {
	p.visible += p.size
}

// Reset shrinks the window back to a single page.
func (p *Pager) Reset() {
	p.visible = p.size
}

// Window returns how many of n rows are rendered.
func (p *Pager) Window(n int) int {
	return min(p.visible, max(n, 0))
}

// HasMore reports whether n rows exceed the window.
func (p *Pager) HasMore(n int) bool {
	return n > p.visible
}

// Page returns the rendered prefix of items.
func Page[T any](items []T, p *Pager) []T {
	return items[:p.Window(len(items))]
}
