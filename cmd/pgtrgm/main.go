// Command pgtrgm prints the pg_trgm operator catalog and trigram index DDL.
package main

import (
	"os"

	"github.com/martsokha/pgtrgm/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
