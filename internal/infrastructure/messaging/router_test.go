package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/quadspace/internal/infrastructure/messaging"
	"github.com/bnema/quadspace/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func echo(_ context.Context, payload json.RawMessage) (any, error) {
	var p map[string]any
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func TestRouter_RegisterHandler_Validates(t *testing.T) {
	r := messaging.NewRouter()

	assert.Error(t, r.RegisterHandler("", messaging.HandlerFunc(echo)))
	assert.Error(t, r.RegisterHandler("echo", nil))
	require.NoError(t, r.RegisterHandler("echo", messaging.HandlerFunc(echo)))
	assert.Equal(t, []string{"echo"}, r.Types())
}

func TestRouter_Dispatch(t *testing.T) {
	r := messaging.NewRouter()
	require.NoError(t, r.RegisterHandler("echo", messaging.HandlerFunc(echo)))
	require.NoError(t, r.RegisterHandler("fail", messaging.HandlerFunc(
		func(context.Context, json.RawMessage) (any, error) { return nil, errors.New("boom") },
	)))

	tests := []struct {
		name   string
		raw    string
		wantOK bool
		wantID string
		errSub string
	}{
		{name: "success", raw: `{"id":"1","type":"echo","payload":{"a":1}}`, wantOK: true, wantID: "1"},
		{name: "handler error", raw: `{"id":"2","type":"fail"}`, wantID: "2", errSub: "boom"},
		{name: "unknown type", raw: `{"id":"3","type":"nope"}`, wantID: "3", errSub: "unknown message type: nope"},
		{name: "missing type", raw: `{"id":"4"}`, wantID: "4", errSub: "missing type"},
		{name: "malformed", raw: `{"id":`, errSub: "invalid message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := r.Dispatch(testContext(), []byte(tt.raw))

			assert.Equal(t, tt.wantOK, resp.OK)
			assert.Equal(t, tt.wantID, resp.ID)
			if tt.errSub != "" {
				assert.Contains(t, resp.Error, tt.errSub)
			} else {
				assert.Empty(t, resp.Error)
			}
		})
	}
}

func TestRouter_Dispatch_ResultPayload(t *testing.T) {
	r := messaging.NewRouter()
	require.NoError(t, r.RegisterHandler("echo", messaging.HandlerFunc(echo)))

	resp := r.Dispatch(testContext(), []byte(`{"id":"7","type":"echo","payload":{"name":"Work"}}`))

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7","ok":true,"result":{"name":"Work"}}`, string(data))
}

func TestResponseScript(t *testing.T) {
	script, err := messaging.ResponseScript(messaging.Response{ID: "9", Error: "nope"})
	require.NoError(t, err)

	assert.Contains(t, script, "window.__quadspaceResponse(")
	assert.Contains(t, script, `{"id":"9","ok":false,"error":"nope"}`)
}

func TestEventScript(t *testing.T) {
	script, err := messaging.EventScript(map[string]string{"kind": "workspaces_changed"})
	require.NoError(t, err)
	assert.Contains(t, script, `window.__quadspaceEvent({"kind":"workspaces_changed"})`)
}
