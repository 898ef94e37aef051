package boolidx

import (
	"encoding/json"
	"fmt"
	"os"
)

// postingLocation is a term's byte offset and length within the postings
// file, mirroring the dictionary entry used by the reference indexer.
type postingLocation struct {
	Offset int64
	Length int64
}

// Dictionary is the loaded term index: every document ID known to the
// corpus plus a term-to-location map for seeking into the postings file.
// Immutable once loaded, per the single-threaded driver model.
type Dictionary struct {
	AllDocs []int
	terms   map[string]postingLocation
}

// dictionaryFile is the on-disk JSON shape: a two-element array of the
// all-docs list and a term -> [offset, length] object, matching the
// reference indexer's json.dump([allDocs, termMap]).
type dictionaryFile struct {
	AllDocs []int
	Terms   map[string][2]int64
}

func (d *dictionaryFile) UnmarshalJSON(b []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &d.AllDocs); err != nil {
		return err
	}
	return json.Unmarshal(raw[1], &d.Terms)
}

func (d dictionaryFile) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{d.AllDocs, d.Terms})
}

// LoadDictionary reads and parses a dictionary file written by the indexer.
func LoadDictionary(path string) (*Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryCorrupt, err)
	}

	var df dictionaryFile
	if err := json.Unmarshal(raw, &df); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDictionaryCorrupt, err)
	}

	terms := make(map[string]postingLocation, len(df.Terms))
	for term, loc := range df.Terms {
		terms[term] = postingLocation{Offset: loc[0], Length: loc[1]}
	}

	return &Dictionary{AllDocs: df.AllDocs, terms: terms}, nil
}

// Lookup returns the postings location for term, and false if the term was
// never indexed (not an error — see ErrMalformedQuery vs. unknown terms).
func (d *Dictionary) Lookup(term string) (offset, length int64, ok bool) {
	loc, ok := d.terms[term]
	return loc.Offset, loc.Length, ok
}
