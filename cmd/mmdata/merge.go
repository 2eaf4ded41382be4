package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/dataset"
)

func runMerge() {
	fs := flag.NewFlagSet("merge", flag.ExitOnError)
	out := fs.String("out", "movies_combined.json", "Output catalog JSON file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: mmdata merge [-out file] input.json [input.json ...]")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	catalogs := make([][]catalog.Movie, 0, fs.NArg())
	for _, path := range fs.Args() {
		movies := readCatalog(path)
		fmt.Printf("%-40s %6d movies\n", path, len(movies))
		catalogs = append(catalogs, movies)
	}

	merged := dataset.Merge(catalogs...)
	writeCatalog(*out, merged)
	fmt.Printf("\nWrote %d movies to %s\n", len(merged), *out)
}
