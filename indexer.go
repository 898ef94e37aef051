package boolidx

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/RoaringBitmap/roaring"
)

// Indexer builds a dictionary and postings file from a directory of
// documents named by their DocID.
type Indexer struct {
	log *slog.Logger
}

// NewIndexer returns an Indexer that logs through log, or the default
// logger if log is nil.
func NewIndexer(log *slog.Logger) *Indexer {
	if log == nil {
		log = slog.Default()
	}
	return &Indexer{log: log}
}

// IndexDirectory walks docsDir, processes every non-directory entry whose
// name is a decimal DocID (in ascending numeric order; other names are
// skipped with a warning) through the shared analyzer, and returns the
// corpus's all-docs list alongside a per-term Roaring bitmap of the
// document IDs that contain it. Each distinct term in a document
// contributes its DocID to that term's bitmap exactly once: the bitmap's
// own deduplication absorbs repeated occurrences within one document, and
// its sorted iteration gives the postings file its required ascending
// order for free.
func (ix *Indexer) IndexDirectory(docsDir string) (allDocs []int, terms map[string]*roaring.Bitmap, err error) {
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("boolidx: reading document directory: %w", err)
	}

	type doc struct {
		id   int
		path string
	}
	var docs []doc
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id, convErr := strconv.ParseUint(e.Name(), 10, 64)
		if convErr != nil {
			ix.log.Warn("skipping non-numeric document name", slog.String("name", e.Name()))
			continue
		}
		docs = append(docs, doc{id: int(id), path: filepath.Join(docsDir, e.Name())})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].id < docs[j].id })

	terms = make(map[string]*roaring.Bitmap)
	allDocs = make([]int, 0, len(docs))

	for _, d := range docs {
		if err := ix.indexDocument(d.id, d.path, terms); err != nil {
			return nil, nil, err
		}
		allDocs = append(allDocs, d.id)
	}

	ix.log.Info("indexing complete",
		slog.Int("documents", len(allDocs)),
		slog.Int("terms", len(terms)))
	return allDocs, terms, nil
}

func (ix *Indexer) indexDocument(docID int, path string, terms map[string]*roaring.Bitmap) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("boolidx: reading document %d: %w", docID, err)
	}

	if docID < 0 || docID > math.MaxUint32 {
		return fmt.Errorf("boolidx: document ID %d does not fit in uint32", docID)
	}

	ix.log.Debug("indexing document", slog.Int("docID", docID))
	for _, term := range Analyze(string(content)) {
		bitmap, ok := terms[term]
		if !ok {
			bitmap = roaring.New()
			terms[term] = bitmap
		}
		bitmap.Add(uint32(docID))
	}
	return nil
}

// WriteIndex writes the postings file (ascending, space-separated ASCII
// DocIDs per term, newline-terminated with the newline excluded from the
// recorded length) and the dictionary file (JSON [allDocs, termMap]) to
// the given paths.
func WriteIndex(dictPath, postingsPath string, allDocs []int, terms map[string]*roaring.Bitmap) error {
	postingsFile, err := os.Create(postingsPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostingsIO, err)
	}
	defer postingsFile.Close()

	sortedTerms := make([]string, 0, len(terms))
	for t := range terms {
		sortedTerms = append(sortedTerms, t)
	}
	sort.Strings(sortedTerms)

	locations := make(map[string][2]int64, len(terms))
	var offset int64
	for _, term := range sortedTerms {
		docIDs := terms[term].ToArray()
		line := make([]int, len(docIDs))
		for i, id := range docIDs {
			line[i] = int(id)
		}
		record := joinInts(line)

		n, err := postingsFile.WriteString(record)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPostingsIO, err)
		}
		locations[term] = [2]int64{offset, int64(n)}
		offset += int64(n)

		nl, err := postingsFile.WriteString("\n")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPostingsIO, err)
		}
		offset += int64(nl)
	}

	return writeDictionary(dictPath, allDocs, locations)
}
