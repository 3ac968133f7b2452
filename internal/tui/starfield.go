package tui

import (
	"math/rand/v2"
	"strings"
)

// starGlyphs are drawn with increasing rarity: small stars are common,
// bright ones rare.
const starGlyphs = "...··*"

// Starfield is a fixed backdrop of stars generated once per screen.
type Starfield struct {
	rows []string
}

// NewStarfield scatters count stars over a width x height grid using a
// PRNG seeded with seed, so the same seed always yields the same sky.
func NewStarfield(width, height, count int, seed uint64) Starfield {
	if width <= 0 || height <= 0 {
		return Starfield{}
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	glyphs := []rune(starGlyphs)
	//nolint:gosec // G404: math/rand/v2 is appropriate for a decorative backdrop
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for range count {
		y := rng.IntN(height)
		x := rng.IntN(width)
		grid[y][x] = glyphs[rng.IntN(len(glyphs))]
	}

	rows := make([]string, height)
	for i, r := range grid {
		rows[i] = string(r)
	}
	return Starfield{rows: rows}
}

// Rows returns the rendered rows.
func (s Starfield) Rows() []string {
	return s.rows
}

// View renders the starfield in the star color.
func (s Starfield) View() string {
	if len(s.rows) == 0 {
		return ""
	}
	return StarStyle.Render(strings.Join(s.rows, "\n"))
}
