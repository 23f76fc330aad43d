//go:build !unix

package jsonstore

// Without flock only the in-process mutex serializes access.
type fileLock struct{}

func lockFile(string, bool) (*fileLock, error) { return &fileLock{}, nil }

func (*fileLock) unlock() {}
