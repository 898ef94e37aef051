package boolidx

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PostingsReader reads term posting lists from the postings file at fixed
// byte offsets, via io.ReaderAt so positioned reads never need to rewind a
// shared cursor.
type PostingsReader struct {
	r io.ReaderAt
}

// NewPostingsReader wraps an already-open postings file.
func NewPostingsReader(r io.ReaderAt) *PostingsReader {
	return &PostingsReader{r: r}
}

// Read returns the ascending, deduplicated DocID list stored at the given
// offset/length, as space-separated ASCII decimals with the trailing
// newline excluded from length (the format written by the indexer).
func (p *PostingsReader) Read(offset, length int64) ([]int, error) {
	if length == 0 {
		return []int{}, nil
	}

	buf := make([]byte, length)
	if _, err := p.r.ReadAt(buf, offset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostingsIO, err)
	}

	fields := strings.Fields(string(buf))
	docs := make([]int, len(fields))
	for i, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed posting %q: %v", ErrPostingsIO, f, err)
		}
		docs[i] = id
	}
	return docs, nil
}

// Lookup reads the posting list for term out of dict, returning an empty
// (non-nil) list and no error when term was never indexed.
func (p *PostingsReader) Lookup(dict *Dictionary, term string) ([]int, error) {
	offset, length, ok := dict.Lookup(term)
	if !ok {
		return []int{}, nil
	}
	return p.Read(offset, length)
}
