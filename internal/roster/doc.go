// Package roster turns one page of SWAPI people into the ordered, paginated
// result the screens display.
//
// A search issues a single request, partitions the page into blue-eyed
// characters (sorted by name) followed by everyone else (sorted by creation
// time), derives the page count from the server total and the display page
// size, and maps any failure to a fixed user-facing message.
package roster
