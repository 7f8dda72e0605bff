package dlx

import "fmt"

// BuildError reports a malformed matrix or an inconsistent primary/width
// combination passed to BuildNetwork. It is always returned, never
// panicked, since it reflects bad input rather than a bug in the network
// itself.
type BuildError struct {
	Msg string
}

func (e *BuildError) Error() string {
	return "dlx: " + e.Msg
}

func buildErrorf(format string, args ...any) *BuildError {
	return &BuildError{Msg: fmt.Sprintf(format, args...)}
}
