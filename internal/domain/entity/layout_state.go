package entity

import "sync"

// DefaultSidebarWidth is the sidebar width used when nothing else is configured.
const DefaultSidebarWidth = 64.0

// LayoutSnapshot is a consistent copy of LayoutState.
type LayoutSnapshot struct {
	SidebarWidth float64
	Fullscreen   bool
}

// LayoutState is the process-wide presentation state shared by the
// reconciler, the fullscreen controller and resize handlers.
// Every method takes the lock for the duration of a single read or write;
// none of them calls out while holding it.
type LayoutState struct {
	mu           sync.Mutex
	sidebarWidth float64
	fullscreen   bool
}

// NewLayoutState creates a state with the given sidebar width, not fullscreen.
// Negative widths fall back to DefaultSidebarWidth.
func NewLayoutState(sidebarWidth float64) *LayoutState {
	if sidebarWidth < 0 {
		sidebarWidth = DefaultSidebarWidth
	}
	return &LayoutState{sidebarWidth: sidebarWidth}
}

// Get returns the sidebar width and fullscreen flag.
func (s *LayoutState) Get() (sidebarWidth float64, fullscreen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarWidth, s.fullscreen
}

// Snapshot returns both fields read under one lock acquisition.
func (s *LayoutState) Snapshot() LayoutSnapshot {
	w, fs := s.Get()
	return LayoutSnapshot{SidebarWidth: w, Fullscreen: fs}
}

// SidebarWidth returns the current sidebar width.
func (s *LayoutState) SidebarWidth() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarWidth
}

// Fullscreen reports whether fullscreen mode is active.
func (s *LayoutState) Fullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fullscreen
}

// SetSidebarWidth records a new width and returns the fullscreen flag
// observed in the same critical section.
func (s *LayoutState) SetSidebarWidth(w float64) (fullscreen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarWidth = w
	return s.fullscreen
}

// SetFullscreen records the fullscreen flag.
func (s *LayoutState) SetFullscreen(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fullscreen = enabled
}
