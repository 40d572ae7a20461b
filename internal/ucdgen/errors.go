// Package ucdgen turns parsed Unicode Character Database records into the
// compact lookup tables consumed by a runtime normalization and collation
// library: canonical decomposition/composition, a combining-class trie, a
// lowercase-offset trie, and a DUCET level-1 hash table.
package ucdgen

import "errors"

// Error kinds. Every error returned from this package wraps exactly one of
// these via %w, so callers can classify failures with errors.Is without
// matching message text.
var (
	// ErrInput marks input the tables cannot be built from: a recursive
	// decomposition that does not terminate, or DUCET input with no usable
	// entries. A decomposition that refers to a code point absent from the
	// record set is not an error: that code point is treated as
	// non-decomposable. Malformed lines and hex fields are reported by
	// package ucd, whose errors do not wrap this sentinel.
	ErrInput = errors.New("ucdgen: input error")

	// ErrInvariant marks a violation of one of the packing invariants:
	// the interesting-code-point table exceeding 15 bits, a decomposition
	// sequence offset exceeding 14 bits, a decomposition length outside
	// {1,2,3,4}, a DUCET key/value bit budget overrun, a DUCET key whose
	// first code point lies outside the 21-bit code space, or two code
	// points claiming the same composition pair. Table widths are not
	// checked: a value needing more than 32 bits still gets a 4-byte width.
	ErrInvariant = errors.New("ucdgen: invariant violation")

	// ErrIO is the kind for a failure to read an input file. No function
	// in this package reads files, and ucd.Load does not wrap its errors
	// with it, so no returned error matches it.
	ErrIO = errors.New("ucdgen: io error")
)
