// core/scan/scan.go
package scan

import (
	"fmt"

	"rtd-core/kmer"
)

// Policy controls what a scan does with a base outside {A,C,G,T}.
type Policy int

const (
	// PolicyReset hard-breaks the window: no k-mer may span the bad
	// base. Silently shortens effective coverage around the break.
	PolicyReset Policy = iota
	// PolicySkip drops the bad base from the symbol stream; the window
	// carries across it. Reported start positions stay in original
	// sequence coordinates, so a k-mer may span more than k bases.
	PolicySkip
	// PolicyStrict aborts the scan with *InvalidSymbolError.
	PolicyStrict
)

// InvalidSymbolError reports the first offending base under PolicyStrict.
type InvalidSymbolError struct {
	Pos    int
	Symbol byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d", e.Symbol, e.Pos)
}

// Above this many keys the index switches from a flat per-key table to
// a map holding only observed k-mers.
const denseMaxKeys = 1 << 16

// Index maps each k-mer key to the ascending start positions where it
// occurs in one scanned sequence. Built once per (sequence, k) and
// read-only afterwards.
type Index struct {
	k      int
	n      int
	dense  [][]int32
	sparse map[uint64][]int32
}

func newIndex(k, n int) *Index {
	ix := &Index{k: k, n: n}
	if kmer.Count(k) <= denseMaxKeys {
		ix.dense = make([][]int32, kmer.Count(k))
	} else {
		ix.sparse = make(map[uint64][]int32, 1024)
	}
	return ix
}

func (ix *Index) add(key uint64, pos int32) {
	if ix.dense != nil {
		ix.dense[key] = append(ix.dense[key], pos)
		return
	}
	ix.sparse[key] = append(ix.sparse[key], pos)
}

// Positions returns the ascending occurrence list for key, or nil if
// the k-mer was never observed. The slice is owned by the index.
func (ix *Index) Positions(key uint64) []int32 {
	if ix.dense != nil {
		return ix.dense[key]
	}
	return ix.sparse[key]
}

// K returns the k-mer length the index was built for.
func (ix *Index) K() int { return ix.k }

// Len returns the length of the scanned sequence.
func (ix *Index) Len() int { return ix.n }

// Scan walks seq once left to right and indexes every valid k-mer
// start position. The packed key is maintained incrementally (shift,
// mask, OR in the new base) so the whole scan is O(len(seq)) for any k.
// A sequence shorter than k yields an empty index, not an error.
// k must already be validated against kmer.MaxK by the caller.
func Scan(seq []byte, k int, p Policy) (*Index, error) {
	ix := newIndex(k, len(seq))
	if len(seq) < k {
		return ix, nil
	}

	mask := kmer.Count(k) - 1
	var key uint64
	run := 0 // valid bases in the current window

	// Under PolicySkip the window may span dropped bases, so the true
	// start is the original position of the oldest base in the window.
	var ring []int32
	if p == PolicySkip {
		ring = make([]int32, k)
	}

	for i := 0; i < len(seq); i++ {
		c, err := kmer.Code(seq[i])
		if err != nil {
			switch p {
			case PolicyStrict:
				return nil, &InvalidSymbolError{Pos: i, Symbol: seq[i]}
			case PolicySkip:
				continue
			default:
				key, run = 0, 0
				continue
			}
		}
		if ring != nil {
			ring[run%k] = int32(i)
		}
		key = (key<<2 | c) & mask
		run++
		if run >= k {
			start := int32(i - k + 1)
			if ring != nil {
				start = ring[run%k]
			}
			ix.add(key, start)
		}
	}
	return ix, nil
}
