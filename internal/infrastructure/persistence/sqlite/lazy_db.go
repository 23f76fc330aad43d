package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/logging"
)

// LazyDB opens the history database on first use, so commands that never
// touch history never pay for the WASM compile and migrations.
// A failed open is remembered; later calls report the same error.
type LazyDB struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	tried   bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path. Nothing is opened yet.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the shared connection, opening it on the first call.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.tried {
		l.tried = true
		l.db, l.openErr = NewConnection(ctx, l.path)
		if l.openErr != nil {
			logging.FromContext(ctx).Warn().Err(l.openErr).Str("path", l.path).Msg("history database unavailable")
		}
	}
	if l.openErr != nil {
		return nil, fmt.Errorf("history database: %w", l.openErr)
	}
	return l.db, nil
}

// Close releases the connection; the next DB call reopens it.
// It is a no-op when nothing was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db, l.tried = nil, false
	return err
}

// IsInitialized reports whether a connection is currently open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}
