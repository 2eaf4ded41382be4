package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/abelbrown/moviematch/internal/dataset"
)

func runConvert() {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	in := fs.String("in", "", "Input CSV file (Title, Genre, Release_Date, Vote_Average, Overview, Poster_Url)")
	out := fs.String("out", "movies.json", "Output catalog JSON file")
	fs.Parse(os.Args[1:])
	requireFlag("in", *in, fs.Usage)

	f, err := os.Open(*in)
	if err != nil {
		logger.Fatal("failed to open CSV", "path", *in, "err", err)
	}
	defer f.Close()

	movies, report, err := dataset.ConvertCSV(f)
	if err != nil {
		logger.Fatal("failed to convert CSV", "path", *in, "err", err)
	}
	writeCatalog(*out, movies)

	fmt.Printf("Rows read:        %d\n", report.Rows)
	fmt.Printf("Movies kept:      %d\n", report.Kept)
	fmt.Printf("Skipped:          %d\n", report.Skipped())
	fmt.Printf("  no title:       %d\n", report.NoTitle)
	fmt.Printf("  no poster:      %d\n", report.NoPoster)
	fmt.Printf("  unrated:        %d\n", report.Unrated)
	fmt.Printf("  malformed:      %d\n", report.Malformed)
	fmt.Printf("\nWrote %s\n", *out)
}
