package main

import (
	"context"
	"flag"
	"os"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/dataset"
)

func runStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	in := fs.String("in", "movies_combined.json", "Catalog JSON file or SQLite database (.db)")
	top := fs.Int("top", 10, "Number of top genres to list")
	fs.Parse(os.Args[1:])

	var movies []catalog.Movie
	if isDB(*in) {
		var err error
		movies, err = readDB(context.Background(), *in)
		if err != nil {
			logger.Fatal("failed to read database", "db", *in, "err", err)
		}
	} else {
		movies = readCatalog(*in)
	}

	if err := dataset.Compute(movies, *top).Write(os.Stdout); err != nil {
		logger.Fatal("failed to write stats", "err", err)
	}
}
