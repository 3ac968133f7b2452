// Package listview provides a scrolling list component for Bubble Tea
// screens.
//
// Items may span several terminal rows. Only the items that fit in the
// viewport are rendered, and the viewport follows the selection as it moves
// with up/down, j/k, pgup/pgdn and home/end.
package listview
