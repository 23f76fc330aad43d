// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "fmt"

// PaneRole identifies one of the fixed panes hosted by the window.
type PaneRole int

const (
	PaneMain1   PaneRole = iota // Top-left quadrant
	PaneMain2                   // Top-right quadrant
	PaneMain3                   // Bottom-left quadrant
	PaneMain4                   // Bottom-right quadrant
	PaneControl                 // Sidebar / control UI
)

var paneLabels = [...]string{
	PaneMain1:   "main1",
	PaneMain2:   "main2",
	PaneMain3:   "main3",
	PaneMain4:   "main4",
	PaneControl: "control",
}

// QuadrantRoles returns the four content panes in layout order.
func QuadrantRoles() [4]PaneRole {
	return [4]PaneRole{PaneMain1, PaneMain2, PaneMain3, PaneMain4}
}

// Label returns the stable string label used in the workspace file and by the host.
func (r PaneRole) Label() string {
	if r < 0 || int(r) >= len(paneLabels) {
		return fmt.Sprintf("pane(%d)", int(r))
	}
	return paneLabels[r]
}

func (r PaneRole) String() string { return r.Label() }

// IsQuadrant reports whether the role is one of the four content panes.
func (r PaneRole) IsQuadrant() bool {
	return r >= PaneMain1 && r <= PaneMain4
}

// QuadrantIndex returns the position of a quadrant role in QuadrantRoles.
func (r PaneRole) QuadrantIndex() (int, bool) {
	if !r.IsQuadrant() {
		return 0, false
	}
	return int(r - PaneMain1), true
}

// ParsePaneRole converts a label back into a role.
func ParsePaneRole(label string) (PaneRole, error) {
	for i, l := range paneLabels {
		if l == label {
			return PaneRole(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pane label %q", label)
}
