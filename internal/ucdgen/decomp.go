package ucdgen

import (
	"fmt"
	"sort"

	"github.com/dropbox/miniutf/internal/ucd"
)

// combiningClass returns the canonical combining class of cp, 0 for any
// code point absent from the record set (the UCD default).
func combiningClass(data ucd.Data, cp rune) uint8 {
	return data.Records[cp].CombiningClass
}

// expandCanonical recursively expands cp's canonical decomposition and
// stably reorders the result by combining class. memo caches completed
// expansions; inflight detects a decomposition cycle, which the UCD is
// assumed never to contain.
func expandCanonical(data ucd.Data, cp rune, memo map[rune][]rune, inflight map[rune]bool) ([]rune, error) {
	if seq, ok := memo[cp]; ok {
		return seq, nil
	}

	record, ok := data.Records[cp]
	if !ok || record.Decomposition.Kind != ucd.DecompositionCanonical {
		memo[cp] = []rune{cp}
		return memo[cp], nil
	}

	if inflight[cp] {
		return nil, fmt.Errorf("%w: canonical decomposition of %s does not terminate", ErrInput, runeHex(cp))
	}
	inflight[cp] = true
	defer delete(inflight, cp)

	var expanded []rune
	for _, c := range record.Decomposition.Mapping {
		sub, err := expandCanonical(data, c, memo, inflight)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, sub...)
	}

	reordered := stableSortByCCC(data, expanded)
	if len(reordered) < 1 || len(reordered) > 4 {
		return nil, fmt.Errorf("%w: decomposition of %s has length %d, want 1..4", ErrInvariant, runeHex(cp), len(reordered))
	}

	memo[cp] = reordered
	return reordered, nil
}

// stableSortByCCC stably sorts seq ascending by combining class. Starters
// (CCC=0) and runs of equal CCC retain their relative order.
func stableSortByCCC(data ucd.Data, seq []rune) []rune {
	out := make([]rune, len(seq))
	copy(out, seq)
	sort.SliceStable(out, func(i, j int) bool {
		return combiningClass(data, out[i]) < combiningClass(data, out[j])
	})
	return out
}

// BuildDecompositions derives the fully expanded, canonically reordered
// decomposition map D for every code point with a canonical decomposition
// in data.
func BuildDecompositions(data ucd.Data) (Decompositions, error) {
	memo := make(map[rune][]rune)
	inflight := make(map[rune]bool)

	cps := sortedCanonicalDecomposableCodepoints(data)

	out := make(Decompositions, len(cps))
	for _, cp := range cps {
		seq, err := expandCanonical(data, cp, memo, inflight)
		if err != nil {
			return nil, err
		}
		out[cp] = seq
	}
	return out, nil
}

func sortedCanonicalDecomposableCodepoints(data ucd.Data) []rune {
	var cps []rune
	for cp, record := range data.Records {
		if record.Decomposition.Kind == ucd.DecompositionCanonical {
			cps = append(cps, cp)
		}
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	return cps
}

// BuildCompositions derives the canonical composition map K by applying
// the four admission conditions in turn to every code point with a
// one-level (unexpanded) canonical decomposition of exactly two code
// points. Composition is defined over the raw per-code-point mapping, not
// the recursively expanded one: a three-way decomposition like U+1E09 is
// never a composition pair, even though its recursive expansion has more
// than two elements.
func BuildCompositions(data ucd.Data) (Compositions, error) {
	cps := sortedCanonicalDecomposableCodepoints(data)

	out := make(Compositions)
	for _, cp := range cps {
		record := data.Records[cp]
		mapping := record.Decomposition.Mapping
		if len(mapping) != 2 {
			continue
		}
		a, b := mapping[0], mapping[1]

		if data.Exclusions[cp] {
			continue
		}
		if combiningClass(data, cp) != 0 {
			continue
		}
		if combiningClass(data, a) != 0 {
			continue
		}

		key := CompositionKey{A: a, B: b}
		if existing, ok := out[key]; ok && existing != cp {
			return nil, fmt.Errorf("%w: composition pair (%s,%s) already maps to %s, cannot also map to %s",
				ErrInvariant, runeHex(a), runeHex(b), runeHex(existing), runeHex(cp))
		}
		out[key] = cp
	}
	return out, nil
}
