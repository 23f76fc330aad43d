package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the history database connection.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	// IsInitialized is false until DB has succeeded once.
	IsInitialized() bool
}
