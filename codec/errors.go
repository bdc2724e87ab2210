package codec

import "fmt"

// ParseError reports a malformed "eg" document: a missing required
// attribute, a non-integer effect, an owner outside {0,1}, or an edge
// endpoint that names a vertex outside the node set. It always carries
// the offending fragment for a one-line diagnostic; no partial game is
// ever returned alongside it.
type ParseError struct {
	Reason   string
	Fragment string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: parse error: %s: %s", e.Reason, e.Fragment)
}

func newParseError(reason string, fragment any) error {
	return &ParseError{Reason: reason, Fragment: fmt.Sprint(fragment)}
}
