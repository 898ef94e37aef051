package boolidx

import (
	"encoding/json"
	"fmt"
	"os"
)

// writeDictionary encodes allDocs and a term->(offset,length) location map
// as the two-element JSON array [allDocs, termMap] and writes it to path,
// the format the reference indexer emits and LoadDictionary parses.
func writeDictionary(path string, allDocs []int, locations map[string][2]int64) error {
	df := dictionaryFile{AllDocs: allDocs, Terms: locations}

	raw, err := json.Marshal(df)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDictionaryCorrupt, err)
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrDictionaryCorrupt, err)
	}
	return nil
}
