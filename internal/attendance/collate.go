package attendance

import (
	"slices"

	"github.com/maruel/natural"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ayoisaiah/pointage/internal/models"
)

// SortListed orders members by last name then first name using French
// collation that ignores case and accents. Ties fall back to the natural
// order of matricules, then member IDs, so the order is total.
func SortListed(listed []models.Listed) {
	// a Collator keeps internal buffers and must not be shared
	col := collate.New(language.French, collate.IgnoreCase, collate.IgnoreDiacritics)

	slices.SortStableFunc(listed, func(a, b models.Listed) int {
		return compareMembers(col, &a.Member, &b.Member)
	})
}

// SortMembers orders roster members the same way as SortListed.
func SortMembers(members []models.Member) {
	col := collate.New(language.French, collate.IgnoreCase, collate.IgnoreDiacritics)

	slices.SortStableFunc(members, func(a, b models.Member) int {
		return compareMembers(col, &a, &b)
	})
}

func compareMembers(col *collate.Collator, a, b *models.Member) int {
	if c := col.CompareString(a.LastName, b.LastName); c != 0 {
		return c
	}

	if c := col.CompareString(a.FirstName, b.FirstName); c != 0 {
		return c
	}

	if a.Matricule != b.Matricule {
		if natural.Less(a.Matricule, b.Matricule) {
			return -1
		}

		return 1
	}

	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}

	return 0
}
