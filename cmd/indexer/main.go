// Command indexer builds a dictionary and postings file from a directory
// of documents named by their DocID.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/blazeix/boolidx"
)

type options struct {
	Input    string `short:"i" long:"input" description:"directory of documents to index" required:"true"`
	Dict     string `short:"d" long:"dict" description:"path to write the dictionary file" required:"true"`
	Postings string `short:"p" long:"postings" description:"path to write the postings file" required:"true"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ix := boolidx.NewIndexer(log)
	allDocs, terms, err := ix.IndexDirectory(opts.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := boolidx.WriteIndex(opts.Dict, opts.Postings, allDocs, terms); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
