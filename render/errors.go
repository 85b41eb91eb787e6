package render

import "errors"

// Sentinel errors for the renderer. I/O failures from the write target are
// returned as-is (wrapped with fmt.Errorf elsewhere), not converted to one
// of these kinds.
var (
	ErrInvalidSize         = errors.New("render: invalid size")
	ErrGPUBackendUnavailable = errors.New("render: gpu backend unavailable")
)
