package domain

// NavigationState tracks which section is current.
// Invariant: 0 <= Current < Total whenever Total > 0.
type NavigationState struct {
	Current int
	Total   int
}

// NewNavigationState starts at the first section
func NewNavigationState(total int) NavigationState {
	if total < 0 {
		total = 0
	}
	return NavigationState{Total: total}
}

// WithCurrent returns the state with Current set to i clamped to the valid range
func (n NavigationState) WithCurrent(i int) NavigationState {
	n.Current = n.clamp(i)
	return n
}

// Next advances one section, stopping at the last
func (n NavigationState) Next() NavigationState {
	return n.WithCurrent(n.Current + 1)
}

// Prev retreats one section, stopping at the first
func (n NavigationState) Prev() NavigationState {
	return n.WithCurrent(n.Current - 1)
}

// IsLast reports whether the current section is the last one
func (n NavigationState) IsLast() bool {
	return n.Total == 0 || n.Current == n.Total-1
}

// Progress is the fraction of the page reached, (Current+1)/Total
func (n NavigationState) Progress() float64 {
	if n.Total == 0 {
		return 0
	}
	return float64(n.Current+1) / float64(n.Total)
}

func (n NavigationState) clamp(i int) int {
	if n.Total == 0 || i < 0 {
		return 0
	}
	if i >= n.Total {
		return n.Total - 1
	}
	return i
}
