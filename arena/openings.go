package arena

import (
	_ "embed"
	"fmt"
	"strings"

	"idiotchess/board"
)

//go:embed openings.txt
var openingsTxt string

// DefaultOpenings returns the built-in opening FENs.
func DefaultOpenings() []string {
	openings, err := ParseOpenings(openingsTxt)
	if err != nil {
		panic(err)
	}
	return openings
}

// ParseOpenings reads one FEN per line, skipping blank lines and // comments.
// Every FEN must load into a valid board.
func ParseOpenings(text string) ([]string, error) {
	var result []string
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if _, err := board.FromFEN(line); err != nil {
			return nil, fmt.Errorf("opening on line %d: %w", i+1, err)
		}
		result = append(result, line)
	}
	return result, nil
}
