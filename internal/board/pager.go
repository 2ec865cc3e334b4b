// Package board splits the listed members of a session into display pages
// and queues the notifications shown on top of them
package board

import "github.com/ayoisaiah/pointage/internal/models"

// Page is one display-sized slice of the listing.
type Page struct {
	Items []models.Listed
	Index int
	Total int
}

// PerPage returns how many items of the given footprint fit in a viewport.
// At least one row and one column are always used.
func PerPage(height, itemHeight, width, itemWidth int) int {
	itemHeight = max(itemHeight, 1)
	itemWidth = max(itemWidth, 1)

	rows := max(height/itemHeight, 1)
	cols := max(width/itemWidth, 1)

	return rows * cols
}

// Paginate splits items into consecutive pages of at most perPage items.
// The pages reference items without copying.
func Paginate(items []models.Listed, perPage int) [][]models.Listed {
	if len(items) == 0 {
		return nil
	}

	perPage = max(perPage, 1)

	pages := make([][]models.Listed, 0, (len(items)+perPage-1)/perPage)

	for start := 0; start < len(items); start += perPage {
		end := min(start+perPage, len(items))
		pages = append(pages, items[start:end:end])
	}

	return pages
}

// Pager cycles through the pages of a listing. Manual navigation, pausing,
// and resuming each start a new rotation generation; rotation ticks from an
// older generation are ignored.
type Pager struct {
	items      []models.Listed
	pages      [][]models.Listed
	perPage    int
	index      int
	generation int
	paused     bool
}

// NewPager returns a pager showing perPage items per page.
func NewPager(perPage int) *Pager {
	return &Pager{perPage: max(perPage, 1)}
}

// SetItems replaces the listing. The current page index is kept when it is
// still valid and clamped otherwise.
func (p *Pager) SetItems(items []models.Listed) {
	p.items = items
	p.repaginate()
}

// Resize changes the number of items per page.
func (p *Pager) Resize(perPage int) {
	perPage = max(perPage, 1)
	if perPage == p.perPage {
		return
	}

	p.perPage = perPage
	p.repaginate()
}

func (p *Pager) repaginate() {
	p.pages = Paginate(p.items, p.perPage)

	switch {
	case len(p.pages) == 0:
		p.index = 0
	case p.index >= len(p.pages):
		p.index = len(p.pages) - 1
	}
}

// AllClear reports whether there is nothing to list.
func (p *Pager) AllClear() bool {
	return len(p.pages) == 0
}

// Current returns the page on display. It is empty when AllClear is true.
func (p *Pager) Current() Page {
	if p.AllClear() {
		return Page{}
	}

	return Page{
		Items: p.pages[p.index],
		Index: p.index,
		Total: len(p.pages),
	}
}

// Pages returns the number of pages.
func (p *Pager) Pages() int {
	return len(p.pages)
}

// PerPage returns the number of items per page.
func (p *Pager) PerPage() int {
	return p.perPage
}

// Generation identifies the current rotation schedule.
func (p *Pager) Generation() int {
	return p.generation
}

// Paused reports whether rotation is suspended.
func (p *Pager) Paused() bool {
	return p.paused
}

// Next moves to the following page and restarts the rotation schedule.
func (p *Pager) Next() {
	p.step(1)
	p.generation++
}

// Prev moves to the preceding page and restarts the rotation schedule.
func (p *Pager) Prev() {
	p.step(-1)
	p.generation++
}

// Advance moves to the next page on a rotation tick. It does nothing and
// returns false if the tick belongs to an older generation or rotation is
// paused.
func (p *Pager) Advance(generation int) bool {
	if generation != p.generation || p.paused {
		return false
	}

	p.step(1)

	return true
}

// Pause suspends rotation.
func (p *Pager) Pause() {
	if p.paused {
		return
	}

	p.paused = true
	p.generation++
}

// Resume restarts rotation with a new generation.
func (p *Pager) Resume() {
	if !p.paused {
		return
	}

	p.paused = false
	p.generation++
}

func (p *Pager) step(delta int) {
	n := len(p.pages)
	if n == 0 {
		return
	}

	p.index = ((p.index+delta)%n + n) % n
}
