package boolidx

import "errors"

// Sentinel errors returned by the dictionary loader, the postings reader,
// and the query driver. Callers should compare with errors.Is; call sites
// that need extra context wrap these with fmt.Errorf("...: %w", err).
var (
	// ErrDictionaryCorrupt means the dictionary file could not be parsed
	// into an all-docs list and a term map. Fatal: the driver aborts.
	ErrDictionaryCorrupt = errors.New("boolidx: dictionary file is corrupt")

	// ErrPostingsIO means a read against the postings file failed or
	// returned malformed data. Fatal: the driver aborts.
	ErrPostingsIO = errors.New("boolidx: postings file I/O error")

	// ErrMalformedQuery means a single query line failed to parse:
	// unbalanced parentheses, a missing operand, or a dangling operator.
	// Recoverable: the driver writes a blank output line and continues.
	ErrMalformedQuery = errors.New("boolidx: malformed query")
)
