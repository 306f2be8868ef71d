// Command reportctl renders and archives reports without the HTTP service. Datasets are read from
// JSON files and archive entries are kept in an embedded SQLite database.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
