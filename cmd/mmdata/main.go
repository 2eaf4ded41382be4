// Command mmdata is the MovieMatch dataset maintenance CLI.
//
// Usage:
//
//	mmdata                                   Show help
//	mmdata convert -in movies.csv -out movies.json
//	mmdata merge -out combined.json a.json b.json
//	mmdata import -in movies.json -db movies.db
//	mmdata stats -in movies.json|movies.db
package main

import (
	"fmt"
	"os"
)

const usage = `mmdata - MovieMatch dataset CLI

Usage:
  mmdata <command> [flags]

Commands:
  convert     Convert a movie CSV export into a catalog JSON file
  merge       Concatenate catalog JSON files and renumber ids
  import      Load a catalog JSON file into a SQLite catalog database
  stats       Print catalog statistics (JSON file or database)

Run 'mmdata <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "convert":
		runConvert()
	case "merge":
		runMerge()
	case "import":
		runImport()
	case "stats":
		runStats()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "mmdata: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
