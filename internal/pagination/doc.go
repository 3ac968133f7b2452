// Package pagination holds the page arithmetic shared by the search CLI and
// the interactive screen.
//
// This package contains:
//   - Params: the requested page and display page size, with validation
//   - Meta: derived page metadata (total pages, has previous/next)
//   - Prev/Next/Label: the rules behind the pagination controls
//
// The display page size is a client-side choice used only to derive the page
// count from the server-reported total; it is not sent to SWAPI.
package pagination
