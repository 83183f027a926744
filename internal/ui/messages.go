package ui

import (
	"github.com/temirov/ftree/internal/render"
)

// generateResultMsg carries the outcome of a build/render/export run back
// into the update loop.
type generateResultMsg struct {
	rendered     string
	summary      render.Summary
	exportedPath string
	err          error
}
