package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage matches every *StorageError via errors.Is.
	ErrStorage = errors.New("workspace storage error")

	ErrWorkspaceNotFound   = errors.New("workspace not found")
	ErrInvalidWorkspace    = errors.New("invalid workspace")
	ErrNavigation          = errors.New("invalid navigation target")
	ErrPaneCreation        = errors.New("pane creation failed")
	ErrHostWindowMissing   = errors.New("host window not found")
	ErrInvalidSidebarWidth = errors.New("invalid sidebar width")
)

// StorageError reports a failure reading or writing the workspace file.
type StorageError struct {
	Op   string // "read", "parse", "write", "lock", ...
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("workspace store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("workspace store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrStorage) true for any StorageError.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// NavigationError reports a pane URL that could not be parsed.
type NavigationError struct {
	Pane PaneRole
	URL  string
	Err  error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("pane %s: invalid url %q: %v", e.Pane, e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

func (e *NavigationError) Is(target error) bool { return target == ErrNavigation }

// WorkspaceNotFound wraps ErrWorkspaceNotFound with the missing name.
func WorkspaceNotFound(name string) error {
	return fmt.Errorf("workspace %q: %w", name, ErrWorkspaceNotFound)
}
