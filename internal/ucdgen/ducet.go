package ucdgen

import (
	"fmt"
	"sort"

	"github.com/dropbox/miniutf/internal/ucd"
)

const (
	ducetHashMultiplier = 1031
	ducetDataHighBit    = 31
	ducetCodeSpaceBits  = 21
)

// ducetEntry is one fully filtered DUCET level-1 mapping: a nonempty key
// sequence to a (possibly empty) weight sequence.
type ducetEntry struct {
	Key    []rune
	Values []uint16
}

// Ducet is the built hash table: the flat records array, the per-bucket
// offset array, and the derived constants the runtime needs to replicate
// both the hash function and the record layout.
type Ducet struct {
	Buckets     int
	Multiplier  int
	LongestKey  int
	KeyBits     int
	ValueBits   int
	DataHighBit int
	Data        []int64
	BucketIndex []int64
}

// ducetHash is the hash function shared by the builder and the runtime:
// a Horner-style rolling hash over the key's code points, reduced modulo
// the bucket count at every step.
func ducetHash(key []rune, buckets int) int {
	h := 0
	for _, cp := range key {
		h = (h*ducetHashMultiplier + int(cp)) % buckets
	}
	return h
}

// BuildDucet builds the perfect-bucket-style hash table for entries.
// Variable-weight collation elements were already folded into
// FirstWeights identically to non-variable ones by the parser; here only
// the w1=0 filtering that distinguishes ignorable elements happens.
func BuildDucet(entries []ucd.CollationEntry) (Ducet, error) {
	byKey := make(map[string]ducetEntry)
	var order []string

	for _, e := range entries {
		if len(e.Key) == 0 {
			continue
		}
		values := make([]uint16, 0, len(e.FirstWeights))
		for _, w := range e.FirstWeights {
			if w != 0 {
				values = append(values, w)
			}
		}

		k := string(e.Key)
		if _, exists := byKey[k]; !exists {
			order = append(order, k)
		}
		byKey[k] = ducetEntry{Key: e.Key, Values: values}
	}

	if len(byKey) == 0 {
		return Ducet{}, fmt.Errorf("%w: DUCET input has no usable entries", ErrInput)
	}

	sort.Strings(order)

	buckets := len(byKey)
	longestKey, longestValue := 0, 0
	for _, k := range order {
		entry := byKey[k]
		if len(entry.Key) > longestKey {
			longestKey = len(entry.Key)
		}
		if len(entry.Values) > longestValue {
			longestValue = len(entry.Values)
		}
	}

	keyBits := bitLength(longestKey)
	valueBits := bitLength(longestValue)
	if keyBits+valueBits > ducetDataHighBit-ducetCodeSpaceBits {
		return Ducet{}, fmt.Errorf("%w: DUCET key/value bit budget exceeded: KEY_BITS=%d VALUE_BITS=%d",
			ErrInvariant, keyBits, valueBits)
	}

	bucketed := make([][]ducetEntry, buckets)
	for _, k := range order {
		entry := byKey[k]
		b := ducetHash(entry.Key, buckets)
		bucketed[b] = append(bucketed[b], entry)
	}
	for b := range bucketed {
		sort.Slice(bucketed[b], func(i, j int) bool {
			return lessRuneSlice(bucketed[b][i].Key, bucketed[b][j].Key)
		})
	}

	var data []int64
	for b := range bucketed {
		for i, entry := range bucketed[b] {
			words, err := encodeDucetRecord(entry, keyBits, valueBits, i == len(bucketed[b])-1)
			if err != nil {
				return Ducet{}, err
			}
			data = append(data, words...)
		}
	}

	bucketIndex := make([]int64, buckets)
	offset := 0
	for b := range bucketed {
		if len(bucketed[b]) == 0 {
			continue
		}
		bucketIndex[b] = int64(offset)
		for _, entry := range bucketed[b] {
			offset += len(entry.Key) + len(entry.Values)
		}
	}
	// Empty buckets point past the end of ducet_data: the runtime, which
	// scans a bucket's records until it matches or sees the end-of-bucket
	// flag, must first check the bucket is non-empty before reading.
	for b := range bucketed {
		if len(bucketed[b]) == 0 {
			bucketIndex[b] = int64(len(data))
		}
	}

	return Ducet{
		Buckets:     buckets,
		Multiplier:  ducetHashMultiplier,
		LongestKey:  longestKey,
		KeyBits:     keyBits,
		ValueBits:   valueBits,
		DataHighBit: ducetDataHighBit,
		Data:        data,
		BucketIndex: bucketIndex,
	}, nil
}

func encodeDucetRecord(entry ducetEntry, keyBits, valueBits int, last bool) ([]int64, error) {
	k, v := len(entry.Key), len(entry.Values)

	if entry.Key[0] >= (1 << ducetCodeSpaceBits) {
		return nil, fmt.Errorf("%w: code point %s exceeds the 21-bit code space", ErrInvariant, runeHex(entry.Key[0]))
	}

	header := uint32(k)<<(ducetDataHighBit-keyBits) |
		uint32(v)<<(ducetDataHighBit-keyBits-valueBits) |
		uint32(entry.Key[0])
	if last {
		header |= 1 << ducetDataHighBit
	}

	words := make([]int64, 0, k+v)
	words = append(words, int64(header))
	for _, cp := range entry.Key[1:] {
		words = append(words, int64(cp))
	}
	for _, w := range entry.Values {
		words = append(words, int64(w))
	}
	return words, nil
}

func lessRuneSlice(a, b []rune) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
