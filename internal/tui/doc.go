// Package tui implements the interactive character search screen.
//
// SearchModel is a Bubble Tea model. Searches run as tea.Cmds; each carries a
// request id and results for anything but the newest request are dropped.
package tui
