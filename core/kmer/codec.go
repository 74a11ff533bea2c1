// core/kmer/codec.go
package kmer

import (
	"fmt"
)

// MaxK is the largest k for which a packed k-mer fits a uint64 key
// (2 bits per base, with headroom for the scanner's rolling shift).
const MaxK = 31

// ErrInvalidK means k is outside [1, MaxK].
var ErrInvalidK = fmt.Errorf("kmer: invalid k (1 <= k <= %d)", MaxK)

// ErrInvalidSymbol means a base outside {A,C,G,T} (case-insensitive).
var ErrInvalidSymbol = fmt.Errorf("kmer: symbol outside A/C/G/T")

// 2-bit base codes: A=0 C=1 G=2 T=3. This ordering makes the numeric
// key order of packed k-mers equal to the lexicographic order of their
// decoded strings, and the complement a plain XOR with 3.
var codes [256]int8

var bases = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range codes {
		codes[i] = -1
	}
	codes['A'], codes['a'] = 0, 0
	codes['C'], codes['c'] = 1, 1
	codes['G'], codes['g'] = 2, 2
	codes['T'], codes['t'] = 3, 3
}

// CheckK validates a k-mer length.
func CheckK(k int) error {
	if k < 1 || k > MaxK {
		return fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	return nil
}

// Code returns the 2-bit code of a single base.
func Code(b byte) (uint64, error) {
	c := codes[b]
	if c < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, b)
	}
	return uint64(c), nil
}

// Pack encodes a k-mer into its integer key, first base in the
// most-significant bits. len(kmer) must be in [1, MaxK].
func Pack(kmer []byte) (uint64, error) {
	if err := CheckK(len(kmer)); err != nil {
		return 0, err
	}
	var key uint64
	for _, b := range kmer {
		c, err := Code(b)
		if err != nil {
			return 0, err
		}
		key = key<<2 | c
	}
	return key, nil
}

// Unpack decodes a key back into its k-mer string. Exact inverse of Pack.
func Unpack(key uint64, k int) string {
	buf := make([]byte, k)
	for i := k - 1; i >= 0; i-- {
		buf[i] = bases[key&3]
		key >>= 2
	}
	return string(buf)
}

// RevComp returns the key of the reverse complement (A<->T, C<->G,
// base order reversed). It is its own inverse.
func RevComp(key uint64, k int) uint64 {
	var rc uint64
	for i := 0; i < k; i++ {
		rc = rc<<2 | (key&3^3)
		key >>= 2
	}
	return rc
}

// Count returns 4^k, the size of the key space.
func Count(k int) uint64 {
	return uint64(1) << (2 * uint(k))
}

// Enumerate returns a fresh generator yielding every key in [0, 4^k)
// in ascending order. The second return value is false once exhausted.
func Enumerate(k int) func() (uint64, bool) {
	var next uint64
	total := Count(k)
	return func() (uint64, bool) {
		if next >= total {
			return 0, false
		}
		v := next
		next++
		return v, true
	}
}
