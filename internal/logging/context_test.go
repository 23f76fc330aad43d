package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestWithComponentAndWorkspace_TagLines(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))
	ctx = WithComponent(ctx, "reconciler")
	ctx = WithWorkspace(ctx, "Math Layout")

	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"reconciler"`)
	assert.Contains(t, out, `"workspace":"Math Layout"`)
	assert.Contains(t, out, `"message":"hello"`)
}
