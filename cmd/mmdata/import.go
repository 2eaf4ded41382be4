package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	in := fs.String("in", "", "Input catalog JSON file")
	db := fs.String("db", "movies.db", "SQLite catalog database")
	fs.Parse(os.Args[1:])
	requireFlag("in", *in, fs.Usage)

	movies := readCatalog(*in)

	n, err := importDB(context.Background(), *db, movies)
	if err != nil {
		logger.Fatal("failed to import movies", "db", *db, "err", err)
	}
	fmt.Printf("Imported %d movies into %s\n", n, *db)
}
