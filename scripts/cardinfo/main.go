package main

import (
	"fmt"
	"os"

	"wavelength"
	"wavelength/internal/game"
)

// cardinfo checks a spectrum card pack and prints what it would add to
// the built-in deck. With no argument it lists the built-in cards.
func main() {
	fmt.Println("Wavelength Spectrum Cards")
	fmt.Println("=========================")
	fmt.Println()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		svc, err := game.NewCardService(wavelength.BuiltinCardsYAML)
		if err != nil {
			return err
		}
		printCards(svc.Builtin())
		fmt.Printf("\n%d built-in cards\n", svc.Count())
		return nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	cards, err := game.LoadCards(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	// Merging catches ids that clash with the built-ins
	svc, err := game.NewCardService(wavelength.BuiltinCardsYAML, data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	printCards(cards)
	fmt.Printf("\n%s adds %d cards (%d in the combined deck)\n", path, len(cards), svc.Count())
	return nil
}

func printCards(cards []game.SpectrumCard) {
	for _, c := range cards {
		fmt.Printf("  %-6s %s\n", c.ID, c)
	}
}
