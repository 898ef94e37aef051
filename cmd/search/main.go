// Command search runs a file of Boolean queries against a dictionary and
// postings file produced by the indexer, writing one result line per query.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/blazeix/boolidx"
)

type options struct {
	Dict     string `short:"d" long:"dict" description:"path to the dictionary file" required:"true"`
	Postings string `short:"p" long:"postings" description:"path to the postings file" required:"true"`
	Queries  string `short:"q" long:"queries" description:"path to a file of queries, one per line" required:"true"`
	Output   string `short:"o" long:"output" description:"path to write query results" required:"true"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	postingsFile, err := os.Open(opts.Postings)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer postingsFile.Close()

	driver, err := boolidx.NewDriver(opts.Dict, postingsFile, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	queries, err := os.Open(opts.Queries)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer queries.Close()

	out, err := os.Create(opts.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer out.Close()

	if _, err := driver.RunQueries(queries, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
