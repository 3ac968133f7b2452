package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Page size options offered by the picker, and the default selection.
const (
	DefaultPage     = 1
	MinPage         = 1
	DefaultPageSize = 25
)

// pageSizeOptions lists the selectable display page sizes in picker order.
//
//nolint:gochecknoglobals // Fixed option table.
var pageSizeOptions = []int{25, 50, 100, 150}

// Validation errors.
var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("page-size must be one of 25, 50, 100, 150")
)

// PageSizeOptions returns a copy of the selectable page sizes.
func PageSizeOptions() []int {
	out := make([]int, len(pageSizeOptions))
	copy(out, pageSizeOptions)
	return out
}

// IsValidPageSize reports whether size is one of the picker options.
func IsValidPageSize(size int) bool {
	for _, opt := range pageSizeOptions {
		if opt == size {
			return true
		}
	}
	return false
}

// NextPageSize returns the option after current, wrapping around. Unknown
// values map to the default.
func NextPageSize(current int) int {
	return stepPageSize(current, 1)
}

// PrevPageSize returns the option before current, wrapping around.
func PrevPageSize(current int) int {
	return stepPageSize(current, -1)
}

func stepPageSize(current, delta int) int {
	for i, opt := range pageSizeOptions {
		if opt == current {
			n := len(pageSizeOptions)
			return pageSizeOptions[((i+delta)%n+n)%n]
		}
	}
	return DefaultPageSize
}

// ParsePageSize parses a page size flag value.
func ParsePageSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !IsValidPageSize(n) {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidPageSize, s)
	}
	return n, nil
}

// Params is a page request: which page, and how many rows a page displays.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the display page size used for the page count.
	PageSize int
}

// NewParams returns Params for the first page at the default size.
func NewParams() Params {
	return Params{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Validate checks the page and page size.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if !IsValidPageSize(p.PageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// WithPageSize returns p with a new page size and the page reset to 1.
func (p Params) WithPageSize(size int) Params {
	return Params{Page: DefaultPage, PageSize: size}
}
