// Command combobox is a searchable dropdown for the terminal: type to filter a
// catalog, pick an entry with the keyboard or mouse, and the chosen label is
// printed on exit.
//
//	combobox --catalog people.yaml --match fuzzy
package main

import (
	"os"

	"github.com/ztolley/combobox/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
