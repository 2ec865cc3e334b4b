package board

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pointage/internal/models"
)

func listing(n int) []models.Listed {
	items := make([]models.Listed, 0, n)

	for i := range n {
		items = append(items, models.Listed{
			Member: models.Member{ID: fmt.Sprint(i)},
			Status: models.StatusAbsent,
		})
	}

	return items
}

func TestPerPage(t *testing.T) {
	cases := []struct {
		name                        string
		height, itemH, width, itemW int
		want                        int
	}{
		{"single column", 10, 1, 40, 36, 10},
		{"two columns", 10, 1, 80, 36, 20},
		{"tall items", 10, 3, 40, 36, 3},
		{"tiny viewport", 0, 1, 5, 36, 1},
		{"invalid footprint", 4, 0, 4, -1, 16},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PerPage(tc.height, tc.itemH, tc.width, tc.itemW)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaginateCoversListingOnce(t *testing.T) {
	for n := range 12 {
		for perPage := 1; perPage <= 5; perPage++ {
			items := listing(n)

			var joined []models.Listed

			for _, page := range Paginate(items, perPage) {
				assert.NotEmpty(t, page)
				assert.LessOrEqual(t, len(page), perPage)

				joined = append(joined, page...)
			}

			if n == 0 {
				assert.Empty(t, joined)
				continue
			}

			if diff := cmp.Diff(items, joined); diff != "" {
				t.Errorf("n=%d perPage=%d (-want +got):\n%s", n, perPage, diff)
			}
		}
	}
}

func TestPagerRotationWraps(t *testing.T) {
	p := NewPager(2)
	p.SetItems(listing(5))

	assert.Equal(t, 3, p.Pages())

	gen := p.Generation()

	var seen []int

	for range 4 {
		seen = append(seen, p.Current().Index)
		assert.True(t, p.Advance(gen))
	}

	assert.Equal(t, []int{0, 1, 2, 0}, seen)
}

func TestPagerManualNavigationResetsRotation(t *testing.T) {
	p := NewPager(2)
	p.SetItems(listing(5))

	gen := p.Generation()

	p.Prev()
	assert.Equal(t, 2, p.Current().Index)
	assert.False(t, p.Advance(gen), "stale tick must be ignored")
	assert.Equal(t, 2, p.Current().Index)

	p.Next()
	assert.Equal(t, 0, p.Current().Index)
	assert.True(t, p.Advance(p.Generation()))
	assert.Equal(t, 1, p.Current().Index)
}

func TestPagerPauseResume(t *testing.T) {
	p := NewPager(1)
	p.SetItems(listing(3))

	p.Pause()
	assert.True(t, p.Paused())
	assert.False(t, p.Advance(p.Generation()))

	before := p.Generation()
	p.Resume()

	assert.NotEqual(t, before, p.Generation())
	assert.True(t, p.Advance(p.Generation()))
	assert.Equal(t, 1, p.Current().Index)
}

func TestPagerClampsOnShrink(t *testing.T) {
	p := NewPager(2)
	p.SetItems(listing(6))
	p.Prev()

	assert.Equal(t, 2, p.Current().Index)

	p.SetItems(listing(3))
	assert.Equal(t, 1, p.Current().Index)
	assert.Equal(t, 2, p.Current().Total)

	p.Resize(10)
	assert.Equal(t, 0, p.Current().Index)
	assert.Len(t, p.Current().Items, 3)
}

func TestPagerAllClear(t *testing.T) {
	p := NewPager(4)
	p.SetItems(listing(2))
	assert.False(t, p.AllClear())

	p.SetItems(nil)
	assert.True(t, p.AllClear())
	assert.Equal(t, Page{}, p.Current())

	p.Next()
	assert.True(t, p.Advance(p.Generation()))
	assert.True(t, p.AllClear())
}
