package main

import (
	"flag"
	"fmt"
	"os"

	"saudiid/pkg/domain"
)

// main keeps the CLI shell small: flag parsing, delegation to the domain
// package, and mapping outcomes to exit codes. All identifier logic lives in
// pkg/domain.
func main() {
	generate := flag.String("generate", "", `generate identifiers for a category ("citizen" or "resident")`)
	count := flag.Int("n", 1, "number of identifiers to generate")
	flag.Parse()

	if *generate != "" {
		if err := runGenerate(*generate, *count); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: saudiid <id> | saudiid -generate citizen|resident [-n count]")
		os.Exit(2)
	}

	id, err := domain.ParseID(flag.Arg(0))
	if err != nil {
		fmt.Println("Invalid ID")
		os.Exit(1)
	}

	switch id.Type() {
	case domain.IDTypeCitizen:
		fmt.Println("Valid Citizen ID")
	case domain.IDTypeResident:
		fmt.Println("Valid Resident ID")
	}
}

func runGenerate(category string, count int) error {
	t, err := domain.ParseIDType(category)
	if err != nil {
		return fmt.Errorf("unknown category %q", category)
	}
	for i := 0; i < count; i++ {
		id, err := domain.NewID(t)
		if err != nil {
			return err
		}
		fmt.Println(id)
	}
	return nil
}
