package jsonstore_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/quadspace/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newStore(t *testing.T, opts ...jsonstore.Option) *jsonstore.Store {
	t.Helper()
	s, err := jsonstore.New(filepath.Join(t.TempDir(), "workspaces.json"), opts...)
	require.NoError(t, err)
	return s
}

func TestStore_GetAll_SeedsMissingFile(t *testing.T) {
	ctx := testCtx()
	s := newStore(t)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Contains(t, all, "Math Layout")
	assert.Contains(t, all, "Programming Layout")
	assert.Contains(t, all, "Swedish Layout")

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \""), "file should be pretty-printed")
	assert.Contains(t, string(data), "&wdorigin=ondc", "ampersands stay unescaped")

	cfg := entity.ParseWorkspaceConfig(all["Programming Layout"])
	assert.Equal(t, "https://github.com/", cfg[entity.PaneMain2])
}

func TestStore_GetAll_ConcurrentStoresSeedOnce(t *testing.T) {
	var logs bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(zerolog.SyncWriter(&logs)))
	path := filepath.Join(t.TempDir(), "nested", "workspaces.json")

	const stores = 8
	start := make(chan struct{})
	var wg sync.WaitGroup
	for range stores {
		s, err := jsonstore.New(path)
		require.NoError(t, err)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			all, err := s.GetAll(ctx)
			assert.NoError(t, err)
			assert.Len(t, all, 3)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, strings.Count(logs.String(), "creating default workspace file"))
}

func TestStore_SaveThenGet_RoundTrips(t *testing.T) {
	ctx := testCtx()
	s := newStore(t, jsonstore.WithSeed(nil))

	doc := json.RawMessage(`{"main1":{"url":"https://a.test"},"main3":{"url":"https://c.test"},"note":"kept"}`)
	require.NoError(t, s.Save(ctx, "Work", doc))

	got, err := s.Get(ctx, "Work")
	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(got))
}

func TestStore_Save_Overwrites(t *testing.T) {
	ctx := testCtx()
	s := newStore(t, jsonstore.WithSeed(nil))

	require.NoError(t, s.Save(ctx, "Work", json.RawMessage(`{"main1":{"url":"https://a.test"}}`)))
	require.NoError(t, s.Save(ctx, "Work", json.RawMessage(`{"main1":{"url":"https://b.test"}}`)))

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.JSONEq(t, `{"main1":{"url":"https://b.test"}}`, string(all["Work"]))
}

func TestStore_Delete(t *testing.T) {
	ctx := testCtx()
	s := newStore(t)

	require.NoError(t, s.Delete(ctx, "Math Layout"))
	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.NotContains(t, all, "Math Layout")
	assert.Len(t, all, 2)

	require.NoError(t, s.Delete(ctx, "Never Existed"), "deleting a missing name succeeds")
	all, err = s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_Get_NotFound(t *testing.T) {
	ctx := testCtx()
	s := newStore(t)

	_, err := s.Get(ctx, "Nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrWorkspaceNotFound)
}

func TestStore_CorruptFile_ReturnsStorageError(t *testing.T) {
	ctx := testCtx()
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"Work": `), 0o644))

	_, err := s.GetAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrStorage)

	var se *entity.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "parse", se.Op)
	assert.Equal(t, s.Path(), se.Path)

	err = s.Save(ctx, "Work", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, entity.ErrStorage, "writes never clobber a corrupt file")
}

func TestStore_NullFile_ReturnsStorageError(t *testing.T) {
	ctx := testCtx()
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("null"), 0o644))

	_, err := s.GetAll(ctx)
	assert.ErrorIs(t, err, entity.ErrStorage)
}

func TestStore_ConcurrentSaves(t *testing.T) {
	ctx := testCtx()
	s := newStore(t, jsonstore.WithSeed(nil))

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	var wg sync.WaitGroup
	for _, n := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Save(ctx, n, json.RawMessage(`{}`)))
		}()
	}
	wg.Wait()

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(names))
}

func TestStore_Watch_ReportsExternalEditsOnly(t *testing.T) {
	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()
	s := newStore(t)
	_, err := s.GetAll(ctx)
	require.NoError(t, err)

	changed := make(chan struct{}, 4)
	require.NoError(t, s.Watch(ctx, 20*time.Millisecond, func() { changed <- struct{}{} }))

	require.NoError(t, s.Save(ctx, "Own", json.RawMessage(`{}`)))
	select {
	case <-changed:
		t.Fatal("own write must not be reported")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"External": {}}`), 0o644))
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("external edit was not reported")
	}
}

func TestSchemaJSON(t *testing.T) {
	data, err := jsonstore.SchemaJSON()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "object", schema["type"])

	doc, ok := schema["additionalProperties"].(map[string]any)
	require.True(t, ok)
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "main1")
	assert.Contains(t, props, "main4")
}
