// Package assets embeds the control pane.
package assets

import (
	_ "embed"
	"strconv"
	"strings"
)

//go:embed control/index.html
var controlHTML string

//go:embed control/control.js
var controlScript string

//go:embed control/control.css
var controlStyles string

// ControlPage returns the self-contained control pane document with the
// sidebar width applied before first paint.
func ControlPage(sidebarWidth float64) string {
	style := ":root{--sidebar-width:" + strconv.FormatFloat(sidebarWidth, 'f', -1, 64) + "px}\n" + controlStyles
	return strings.NewReplacer(
		"/*STYLE*/", style,
		"/*SCRIPT*/", controlScript,
	).Replace(controlHTML)
}
