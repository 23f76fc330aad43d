// Package jsonstore keeps workspaces in a single pretty-printed JSON file.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/repository"
	"github.com/bnema/quadspace/internal/logging"
)

const (
	// DefaultFileName is used when no path is configured.
	DefaultFileName = "workspaces.json"

	filePerm = 0o644
	dirPerm  = 0o755
)

// Store is a file-backed WorkspaceRepository. Every operation re-reads the
// file so edits made by another process are picked up. Writes replace the
// file atomically and hold an advisory lock on "<path>.lock".
type Store struct {
	path string
	seed map[string]json.RawMessage

	mu       sync.Mutex
	lastSeen []byte
}

var _ repository.WorkspaceRepository = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithSeed replaces the workspaces written when the file does not exist.
// A nil map seeds an empty object.
func WithSeed(seed map[string]json.RawMessage) Option {
	return func(s *Store) { s.seed = seed }
}

// New creates a store for path. Relative paths are resolved against the
// current working directory once, here.
func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		path = DefaultFileName
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &entity.StorageError{Op: "resolve", Path: path, Err: err}
	}
	s := &Store{path: abs, seed: DefaultWorkspaces()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the absolute path of the workspace file.
func (s *Store) Path() string { return s.path }

// Get returns one workspace.
func (s *Store) Get(ctx context.Context, name string) (json.RawMessage, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	doc, ok := all[name]
	if !ok {
		return nil, entity.WorkspaceNotFound(name)
	}
	return doc, nil
}

// GetAll returns every workspace, creating the file with the seed set first
// if it does not exist yet.
func (s *Store) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, found, err := s.readLocked(false)
	if err != nil || found {
		return all, err
	}

	// Seeding writes, so it needs the exclusive lock. Another process may
	// have created the file in between; loadOrSeed reads again under it.
	var seeded map[string]json.RawMessage
	err = s.withFileLock(true, func() error {
		var err error
		seeded, err = s.loadOrSeed(ctx)
		return err
	})
	return seeded, err
}

// Save inserts or replaces a workspace.
func (s *Store) Save(ctx context.Context, name string, doc json.RawMessage) error {
	return s.update(ctx, func(all map[string]json.RawMessage) bool {
		all[name] = doc
		return true
	})
}

// Delete removes a workspace. Deleting a missing name leaves the file untouched.
func (s *Store) Delete(ctx context.Context, name string) error {
	return s.update(ctx, func(all map[string]json.RawMessage) bool {
		if _, ok := all[name]; !ok {
			logging.FromContext(ctx).Debug().Str("workspace", name).Msg("delete of missing workspace ignored")
			return false
		}
		delete(all, name)
		return true
	})
}

func (s *Store) update(ctx context.Context, mutate func(map[string]json.RawMessage) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.withFileLock(true, func() error {
		all, err := s.loadOrSeed(ctx)
		if err != nil {
			return err
		}
		if !mutate(all) {
			return nil
		}
		return s.write(ctx, all)
	})
}

// withFileLock runs fn while holding the advisory lock on "<path>.lock".
func (s *Store) withFileLock(exclusive bool, fn func() error) error {
	lock, err := lockFile(s.lockPath(), exclusive)
	if err != nil {
		return &entity.StorageError{Op: "lock", Path: s.path, Err: err}
	}
	defer lock.unlock()
	return fn()
}

// readLocked reads the file under a file lock. found is false when the
// file does not exist yet.
func (s *Store) readLocked(exclusive bool) (all map[string]json.RawMessage, found bool, err error) {
	err = s.withFileLock(exclusive, func() error {
		var err error
		all, found, err = s.read()
		return err
	})
	return all, found, err
}

// read parses the file. Callers hold s.mu and a file lock.
func (s *Store) read() (map[string]json.RawMessage, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &entity.StorageError{Op: "read", Path: s.path, Err: err}
	}

	all, err := parse(data)
	if err != nil {
		return nil, false, &entity.StorageError{Op: "parse", Path: s.path, Err: err}
	}
	s.lastSeen = data
	return all, true, nil
}

// loadOrSeed reads the file, writing the seed set when it is missing.
// Callers hold s.mu and the exclusive file lock.
func (s *Store) loadOrSeed(ctx context.Context) (map[string]json.RawMessage, error) {
	all, found, err := s.read()
	if err != nil || found {
		return all, err
	}
	logging.FromContext(ctx).Info().Str("path", s.path).Msg("creating default workspace file")
	all = copyDocs(s.seed)
	if err := s.write(ctx, all); err != nil {
		return nil, err
	}
	return all, nil
}

func parse(data []byte) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	if all == nil {
		// A literal "null" file.
		return nil, fmt.Errorf("workspace file is not a JSON object")
	}
	return all, nil
}

// encode pretty-prints with two-space indents and keeps '&' in URLs readable.
func encode(all map[string]json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(all); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// write replaces the file via a temp file in the same directory.
// Callers hold s.mu and the exclusive file lock.
func (s *Store) write(ctx context.Context, all map[string]json.RawMessage) error {
	data, err := encode(all)
	if err != nil {
		return &entity.StorageError{Op: "encode", Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &entity.StorageError{Op: "write", Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &entity.StorageError{Op: "write", Path: s.path, Err: err}
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			logging.FromContext(ctx).Warn().Err(removeErr).Str("path", tmpPath).Msg("failed to remove temp workspace file")
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return &entity.StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return &entity.StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &entity.StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		cleanup()
		return &entity.StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		cleanup()
		return &entity.StorageError{Op: "write", Path: s.path, Err: err}
	}

	s.lastSeen = data
	logging.FromContext(ctx).Debug().Str("path", s.path).Int("workspaces", len(all)).Msg("workspace file written")
	return nil
}

// changedOnDisk reports whether data differs from what the store last read
// or wrote.
func (s *Store) changedOnDisk(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if bytes.Equal(data, s.lastSeen) {
		return false
	}
	s.lastSeen = data
	return true
}

func (s *Store) lockPath() string { return s.path + ".lock" }

func copyDocs(src map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(src))
	for k, v := range src {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}
