//go:build !webkit_cgo

package gtkhost_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/quadspace/internal/infrastructure/gtkhost"
)

func TestApp_Run_Unavailable(t *testing.T) {
	app := gtkhost.New(gtkhost.Options{Label: "quadspace_main"}, nil)

	err := app.Run(context.Background(), nil)
	assert.ErrorIs(t, err, gtkhost.ErrUnavailable)

	_, ok := app.Window("quadspace_main")
	assert.False(t, ok)
}
