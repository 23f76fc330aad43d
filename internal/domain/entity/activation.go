package entity

import "time"

// WorkspaceActivation records one completed workspace switch.
type WorkspaceActivation struct {
	ID           int64
	Workspace    string
	ActivatedAt  time.Time
	Fullscreen   bool
	SidebarWidth float64
	PanesCreated int
}
