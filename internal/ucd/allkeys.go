package ucd

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// collationElementPattern matches a single bracketed collation element,
// e.g. "[.1C47.0020.0002]" (non-variable) or "[*0000.0059.0002]"
// (variable). Group 1 is the dot-separated hex weights.
var collationElementPattern = regexp.MustCompile(`\[[.*]([0-9A-Fa-f.]+)\]`)

// ParseAllkeys reads allkeys.txt (the DUCET). Lines with an empty key are
// skipped. Variable-weight elements ("[*...]") are parsed the same as
// non-variable ones ("[.....]"): the distinction is not retained, since
// this generator only ever emits level-1 weights and treats a w1=0 entry
// as ignorable regardless of which bracket form produced it.
func ParseAllkeys(r io.Reader) ([]CollationEntry, error) {
	var entries []CollationEntry

	err := eachDataLine(r, func(line string) error {
		keyField, rest, ok := strings.Cut(line, ";")
		if !ok {
			return fmt.Errorf("allkeys.txt: missing ';' separator: %q", line)
		}
		keyField = strings.TrimSpace(keyField)
		if keyField == "" {
			return nil
		}

		key, err := parseCodepointSequence(keyField)
		if err != nil {
			return fmt.Errorf("allkeys.txt: key: %w", err)
		}

		matches := collationElementPattern.FindAllStringSubmatch(rest, -1)
		if matches == nil {
			return fmt.Errorf("allkeys.txt: no collation elements found: %q", line)
		}

		weights := make([]uint16, 0, len(matches))
		for _, m := range matches {
			parts := strings.Split(m[1], ".")
			if len(parts) == 0 {
				return fmt.Errorf("allkeys.txt: empty collation element: %q", line)
			}
			w1, err := strconv.ParseUint(parts[0], 16, 16)
			if err != nil {
				return fmt.Errorf("allkeys.txt: weight: %w", err)
			}
			weights = append(weights, uint16(w1))
		}

		entries = append(entries, CollationEntry{Key: key, FirstWeights: weights})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func parseCodepointSequence(field string) ([]rune, error) {
	fields := strings.Fields(field)
	seq := make([]rune, 0, len(fields))
	for _, f := range fields {
		cp, err := parseHex(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, cp)
	}
	return seq, nil
}
