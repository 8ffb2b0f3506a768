package tui

import "github.com/auctionlens/auctionlens/internal/form"

// statSections are the three mutually exclusive stat tabs. The basic section
// is always visible and is not part of the rotation.
var statSections = []form.Section{
	form.SectionBatting,
	form.SectionBowling,
	form.SectionFielding,
}

// Navigator tracks which stat section is currently visible. It is purely
// presentational: switching never touches form state or validation results,
// and every field stays live regardless of what is on screen.
type Navigator struct {
	active form.Section
}

// NewNavigator starts on the batting section.
func NewNavigator() *Navigator {
	return &Navigator{active: form.SectionBatting}
}

// Active returns the visible stat section.
func (n *Navigator) Active() form.Section {
	return n.active
}

// Set activates the given stat section. Non-stat sections are ignored.
func (n *Navigator) Set(s form.Section) {
	for _, candidate := range statSections {
		if candidate == s {
			n.active = s
			return
		}
	}
}

// Next rotates to the following stat section.
func (n *Navigator) Next() {
	for i, s := range statSections {
		if s == n.active {
			n.active = statSections[(i+1)%len(statSections)]
			return
		}
	}
}

// Index returns the 0-based position of the active section in the rotation.
func (n *Navigator) Index() int {
	for i, s := range statSections {
		if s == n.active {
			return i
		}
	}
	return 0
}
