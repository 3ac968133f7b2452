package tui

// ViewState is what the search screen body currently shows.
type ViewState int

const (
	// ViewStateIdle is shown before the first search.
	ViewStateIdle ViewState = iota
	// ViewStateLoading shows the spinner while a request is in flight.
	ViewStateLoading
	// ViewStateError shows a failure message.
	ViewStateError
	// ViewStateEmpty shows the empty-result message.
	ViewStateEmpty
	// ViewStateList shows the character list and page controls.
	ViewStateList
	// ViewStateQuitting is set once the user asks to leave.
	ViewStateQuitting
)

// String returns the state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateIdle:
		return "idle"
	case ViewStateLoading:
		return "loading"
	case ViewStateError:
		return "error"
	case ViewStateEmpty:
		return "empty"
	case ViewStateList:
		return "list"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Focus selects which control receives keys.
type Focus int

const (
	// FocusInput routes keys to the search input.
	FocusInput Focus = iota
	// FocusList routes keys to the result list and page controls.
	FocusList
)
