// Package main provides the phenodb CLI application.
// phenodb loads curated phenotype/expression measurement matrices into
// a PostgreSQL reference database.
package main

import (
	"os"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
