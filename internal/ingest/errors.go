package ingest

import "errors"

// Sentinel errors for the ingest package. Callers branch on these with
// errors.Is; the wrapped context (line number, offending text, path) is
// attached with fmt.Errorf("%w: ...") at the call site.
var (
	// ErrMalformedLine indicates a t/v/e line with the wrong token count
	// or a non-integer field where an integer was required.
	ErrMalformedLine = errors.New("ingest: malformed line")

	// ErrUnknownTag indicates a non-blank line whose leading token was
	// not one of t, v, e.
	ErrUnknownTag = errors.New("ingest: unknown line tag")

	// ErrIO indicates the input path could not be opened or read.
	ErrIO = errors.New("ingest: io error")
)
