package roster

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rshade/holocron/internal/swapi"
)

// Order returns chars with blue-eyed characters first, sorted by name, then
// the rest sorted by creation time. Undated characters trail the dated ones.
// Ties keep their input order and the input slice is not modified.
func Order(chars []swapi.Character) []swapi.Character {
	blue := make([]swapi.Character, 0, len(chars))
	other := make([]swapi.Character, 0, len(chars))
	for _, c := range chars {
		if c.BlueEyed() {
			blue = append(blue, c)
		} else {
			other = append(other, c)
		}
	}

	sortByName(blue)
	sortByCreated(other)

	return append(blue, other...)
}

// sortByName sorts with English collation so accents and case order the way
// a reader expects rather than by byte value.
func sortByName(chars []swapi.Character) {
	col := collate.New(language.English)
	sort.SliceStable(chars, func(i, j int) bool {
		return col.CompareString(chars[i].Name, chars[j].Name) < 0
	})
}

func sortByCreated(chars []swapi.Character) {
	type dated struct {
		c  swapi.Character
		at time.Time
		ok bool
	}
	rows := make([]dated, len(chars))
	for i, c := range chars {
		at, ok := c.CreatedAt()
		rows[i] = dated{c: c, at: at, ok: ok}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.ok && b.ok {
			return a.at.Before(b.at)
		}
		return a.ok && !b.ok
	})

	for i, r := range rows {
		chars[i] = r.c
	}
}
