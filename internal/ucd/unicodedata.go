package ucd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseHex parses a hex code point, or returns 0 for an empty field (the
// UCD convention for "this optional field is absent").
func parseHex(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex code point %q: %w", s, err)
	}
	return rune(v), nil
}

// parseDecomposition parses field 5 of a UnicodeData.txt record: zero or
// more space-separated hex code points, optionally prefixed with a
// bracketed compatibility tag.
func parseDecomposition(field string) (Decomposition, error) {
	if field == "" {
		return Decomposition{Kind: DecompositionNone}, nil
	}

	parts := strings.Fields(field)
	tag := ""
	if strings.HasPrefix(parts[0], "<") {
		tag = parts[0]
		parts = parts[1:]
	}

	mapping := make([]rune, 0, len(parts))
	for _, p := range parts {
		cp, err := parseHex(p)
		if err != nil {
			return Decomposition{}, fmt.Errorf("decomposition mapping: %w", err)
		}
		mapping = append(mapping, cp)
	}

	kind := DecompositionCanonical
	if tag != "" {
		kind = DecompositionCompat
	}
	return Decomposition{Kind: kind, Tag: tag, Mapping: mapping}, nil
}

// ParseUnicodeData reads UnicodeData.txt and returns one Record per
// non-range line. Range pairs (the "<..., First>" / "<..., Last>"
// convention used for large CJK/private-use blocks) are not expanded:
// no core component needs a decomposition, combining class, or case
// mapping for a block of unassigned-looking filler code points, and
// expanding all of them would balloon the in-memory record set for no
// benefit.
func ParseUnicodeData(r io.Reader) (map[rune]Record, error) {
	records := make(map[rune]Record)

	err := eachDataLine(r, func(line string) error {
		fields := strings.Split(line, ";")
		if len(fields) < 15 {
			return fmt.Errorf("UnicodeData.txt: expected 15 fields, got %d: %q", len(fields), line)
		}

		cp, err := parseHex(fields[0])
		if err != nil {
			return fmt.Errorf("UnicodeData.txt: code point: %w", err)
		}

		if strings.Contains(fields[1], ", First>") || strings.Contains(fields[1], ", Last>") {
			return nil
		}

		ccc, err := strconv.ParseUint(fields[3], 10, 8)
		if err != nil {
			return fmt.Errorf("UnicodeData.txt: combining class for %U: %w", cp, err)
		}

		decomp, err := parseDecomposition(fields[5])
		if err != nil {
			return fmt.Errorf("UnicodeData.txt: %U: %w", cp, err)
		}

		upper, err := parseHex(fields[12])
		if err != nil {
			return fmt.Errorf("UnicodeData.txt: uppercase for %U: %w", cp, err)
		}
		lower, err := parseHex(fields[13])
		if err != nil {
			return fmt.Errorf("UnicodeData.txt: lowercase for %U: %w", cp, err)
		}
		title, err := parseHex(fields[14])
		if err != nil {
			return fmt.Errorf("UnicodeData.txt: titlecase for %U: %w", cp, err)
		}

		records[cp] = Record{
			CodePoint:      cp,
			Name:           fields[1],
			Category:       fields[2],
			CombiningClass: uint8(ccc),
			BidiCategory:   fields[4],
			Decomposition:  decomp,
			DecimalValue:   fields[6],
			DigitValue:     fields[7],
			NumericValue:   fields[8],
			Mirrored:       fields[9],
			OldName:        fields[10],
			Comment:        fields[11],
			Uppercase:      upper,
			Lowercase:      lower,
			Titlecase:      title,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
