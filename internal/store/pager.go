package store

// Pager is the desktop pagination cursor: a fixed page size and a
// current page clamped into the valid range for the filtered total.
type Pager struct {
	pageSize int
	page     int
}

// NewPager creates a pager with the given page size, positioned on the
// first page.
func NewPager(pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager{pageSize: pageSize, page: 1}
}

// TotalPages reports the number of pages for total items, at least 1.
func (p *Pager) TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + p.pageSize - 1) / p.pageSize
}

// Page returns the current page clamped into [1, TotalPages(total)].
func (p *Pager) Page(total int) int {
	page := p.page
	if last := p.TotalPages(total); page > last {
		page = last
	}
	if page < 1 {
		page = 1
	}
	return page
}

// SetPage moves to the given page. Out-of-range values are stored as-is
// and clamped on read, so a shrinking filtered total lands the cursor on
// the last valid page.
func (p *Pager) SetPage(page int) {
	p.page = page
}

// Next advances one page.
func (p *Pager) Next(total int) {
	p.page = p.Page(total) + 1
}

// Prev moves back one page.
func (p *Pager) Prev(total int) {
	p.page = p.Page(total) - 1
}

// Bounds returns the half-open [start, end) index range of the current
// page within a list of total items.
func (p *Pager) Bounds(total int) (start, end int) {
	start = (p.Page(total) - 1) * p.pageSize
	end = start + p.pageSize
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}
	return start, end
}

// Reset returns the cursor to the first page.
func (p *Pager) Reset() {
	p.page = 1
}

// Feed is the compact load-more cursor: a monotonically growing visible
// count starting at a fixed initial size.
type Feed struct {
	initial  int
	pageSize int
	visible  int
	pending  bool
}

// NewFeed creates a feed showing initial items, growing by pageSize per
// load-more.
func NewFeed(initial, pageSize int) *Feed {
	if initial < 1 {
		initial = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return &Feed{initial: initial, pageSize: pageSize, visible: initial}
}

// Visible reports how many of total items to show.
func (f *Feed) Visible(total int) int {
	if f.visible > total {
		return total
	}
	return f.visible
}

// Pending reports whether a load-more is waiting to settle.
func (f *Feed) Pending() bool {
	return f.pending
}

// Exhausted reports whether everything is already visible.
func (f *Feed) Exhausted(total int) bool {
	return f.visible >= total
}

// More requests one page of growth. It reports whether the request was
// accepted: a request while a prior one is pending, or when nothing more
// remains, is a no-op. The caller schedules its debounce and then calls
// [Feed.Settle] to apply the growth.
func (f *Feed) More(total int) bool {
	if f.pending || f.Exhausted(total) {
		return false
	}
	f.pending = true
	return true
}

// Settle applies a pending load-more, growing the visible count by one
// page unit capped at total.
func (f *Feed) Settle(total int) {
	if !f.pending {
		return
	}
	f.pending = false
	f.visible += f.pageSize
	if f.visible > total {
		f.visible = total
	}
	if f.visible < f.initial {
		f.visible = f.initial
	}
}

// Reset returns the feed to its initial visible count and drops any
// pending request. Called on every selection change.
func (f *Feed) Reset() {
	f.visible = f.initial
	f.pending = false
}
