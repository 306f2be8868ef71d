package renderer

import "errors"

var (
	ErrInvalidRenderer = errors.New("renderer: invalid renderer")
	ErrRenderTimeout   = errors.New("renderer: render timed out")
	ErrRenderFailed    = errors.New("renderer: render failed")
)
