package boolidx

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Evaluate walks a rewritten operator tree bottom-up and merges posting
// lists through the C4 kernel, dispatching on the node's tag.
func Evaluate(n *Node, allDocs []int) []int {
	switch n.Op {
	case OpLeaf:
		return n.Postings
	case OpAnd:
		operands := make([][]int, len(n.Children))
		for i, c := range n.Children {
			operands[i] = Evaluate(c, allDocs)
		}
		return MultiAnd(operands)
	case OpOr:
		operands := make([][]int, len(n.Children))
		for i, c := range n.Children {
			operands[i] = Evaluate(c, allDocs)
		}
		return MultiOr(operands)
	case OpNot:
		return Not(Evaluate(n.Children[0], allDocs), allDocs)
	case OpAndNot:
		return AndNot(Evaluate(n.Children[0], allDocs), Evaluate(n.Children[1], allDocs))
	default:
		panic("boolidx: unreachable Op in Evaluate")
	}
}

// Driver runs the full per-line query pipeline: parse, build, rewrite,
// evaluate, write. It holds the one open postings file handle for the
// lifetime of a run, per the single-threaded, single-handle resource model.
type Driver struct {
	dict     *Dictionary
	postings *PostingsReader
	log      *slog.Logger
}

// NewDriver loads the dictionary and wraps the already-open postings file
// handle. Returns ErrDictionaryCorrupt if the dictionary cannot be parsed.
func NewDriver(dictPath string, postingsFile io.ReaderAt, log *slog.Logger) (*Driver, error) {
	dict, err := LoadDictionary(dictPath)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		dict:     dict,
		postings: NewPostingsReader(postingsFile),
		log:      log,
	}, nil
}

// resolve stems and looks up a single query term, logging unknown terms at
// debug level — an unknown term is not an error (§7), it simply resolves
// to an empty posting list. A postings read failure is returned.
func (d *Driver) resolve(term string) ([]int, error) {
	stemmed := resolveTerm(term)
	if stemmed == "" {
		return []int{}, nil
	}
	postings, err := d.postings.Lookup(d.dict, stemmed)
	if err != nil {
		return nil, err
	}
	if len(postings) == 0 {
		d.log.Debug("unknown term", slog.String("term", stemmed))
	}
	return postings, nil
}

// RunQueries reads one query per line from in, writes one result line (or
// a blank line on a malformed query) per line to out, and returns the
// count of queries processed. A malformed query is logged and skipped; a
// postings I/O failure aborts the run.
func (d *Driver) RunQueries(in io.Reader, out io.Writer) (int, error) {
	start := time.Now()
	scanner := bufio.NewScanner(in)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		count++

		result, err := d.runOne(line)
		if err != nil {
			if err == ErrMalformedQuery {
				d.log.Warn("malformed query", slog.String("query", line))
				fmt.Fprintln(writer)
				continue
			}
			return count, err
		}

		fmt.Fprintln(writer, joinInts(result))
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("%w: %v", ErrPostingsIO, err)
	}

	d.log.Info("query run complete",
		slog.Int("queries", count),
		slog.Duration("elapsed", time.Since(start)))
	return count, nil
}

func (d *Driver) runOne(line string) ([]int, error) {
	rpn, err := Parse(line)
	if err != nil {
		return nil, err
	}

	var lookupErr error
	tree, err := Build(rpn, func(term string) []int {
		postings, err := d.resolve(term)
		if err != nil && lookupErr == nil {
			lookupErr = err
		}
		return postings
	})
	if lookupErr != nil {
		return nil, lookupErr
	}
	if err != nil {
		return nil, err
	}

	tree = Rewrite(tree, len(d.dict.AllDocs))
	return Evaluate(tree, d.dict.AllDocs), nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
