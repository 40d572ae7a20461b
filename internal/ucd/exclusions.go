package ucd

import (
	"fmt"
	"io"
	"strings"
)

// ParseCompositionExclusions reads CompositionExclusions.txt: one hex
// code point per non-comment line, optionally followed by trailing
// whitespace-separated commentary that isn't prefixed with '#' (the
// published file uses plain "# " comments, but this tolerates a bare
// code point token followed by anything else on the line).
func ParseCompositionExclusions(r io.Reader) (map[rune]bool, error) {
	exclusions := make(map[rune]bool)

	err := eachDataLine(r, func(line string) error {
		token := strings.Fields(line)[0]
		cp, err := parseHex(token)
		if err != nil {
			return fmt.Errorf("CompositionExclusions.txt: %w", err)
		}
		exclusions[cp] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return exclusions, nil
}
