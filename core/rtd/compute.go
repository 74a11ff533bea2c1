// core/rtd/compute.go
package rtd

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"rtd-core/kmer"
	"rtd-core/scan"
)

// Variant selects which return-time definition Compute uses.
type Variant int

const (
	// SameKmer measures gaps between consecutive occurrences of each k-mer.
	SameKmer Variant = iota
	// Pairwise measures, for every ordered k-mer pair (A,B), the gap from
	// each occurrence of A to the nearest following occurrence of B.
	Pairwise
	// ReverseComplement is Pairwise restricted to B = revcomp(A).
	ReverseComplement
)

func (v Variant) String() string {
	switch v {
	case Pairwise:
		return "pairwise"
	case ReverseComplement:
		return "revcomp"
	default:
		return "same"
	}
}

// Pairwise enumerates 4^k x 4^k entries; past this k the entry count
// itself overflows anything addressable.
const maxPairwiseK = 15

// Config holds computation parameters.
type Config struct {
	Variant     Variant
	Policy      scan.Policy
	ExcludeSelf bool // Pairwise: drop the A==B diagonal
	Workers     int  // >1 parallelizes Pairwise across first-key rows
}

// Engine computes return time distributions with a fixed Config.
// It holds no per-call state: one Engine may serve concurrent Compute
// calls on different sequences.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// Entry is the statistics record for one k-mer (SameKmer) or ordered
// k-mer pair (Pairwise, ReverseComplement; Key2 is the second k-mer).
type Entry struct {
	Key   uint64
	Key2  uint64
	Stats Stats
}

// Result maps the enumerated key space of one sequence to statistics.
// Entries are in ascending (Key, Key2) order and cover every key (or
// ordered pair) exactly once, including zero-occurrence ones.
type Result struct {
	K       int
	Variant Variant
	Entries []Entry
}

// Compute scans seq once and assembles the full RTD result for k under
// the configured variant. Deterministic: identical inputs yield
// identical results regardless of Workers.
func (e *Engine) Compute(seq []byte, k int) (*Result, error) {
	if err := kmer.CheckK(k); err != nil {
		return nil, err
	}
	if e.cfg.Variant == Pairwise && k > maxPairwiseK {
		return nil, fmt.Errorf("%w: pairwise needs k <= %d", kmer.ErrInvalidK, maxPairwiseK)
	}
	ix, err := scan.Scan(seq, k, e.cfg.Policy)
	if err != nil {
		return nil, err
	}
	switch e.cfg.Variant {
	case Pairwise:
		return e.pairwise(ix, k), nil
	case ReverseComplement:
		return e.revComp(ix, k), nil
	default:
		return e.same(ix, k), nil
	}
}

func (e *Engine) same(ix *scan.Index, k int) *Result {
	res := &Result{K: k, Variant: SameKmer, Entries: make([]Entry, 0, kmer.Count(k))}
	next := kmer.Enumerate(k)
	for key, ok := next(); ok; key, ok = next() {
		res.Entries = append(res.Entries, Entry{
			Key:   key,
			Key2:  key,
			Stats: Summarize(SameTimes(ix, key)),
		})
	}
	return res
}

func (e *Engine) revComp(ix *scan.Index, k int) *Result {
	res := &Result{K: k, Variant: ReverseComplement, Entries: make([]Entry, 0, kmer.Count(k))}
	next := kmer.Enumerate(k)
	for key, ok := next(); ok; key, ok = next() {
		rc := kmer.RevComp(key, k)
		res.Entries = append(res.Entries, Entry{
			Key:   key,
			Key2:  rc,
			Stats: Summarize(PairTimes(ix, key, rc)),
		})
	}
	return res
}

func (e *Engine) pairwise(ix *scan.Index, k int) *Result {
	nk := kmer.Count(k)
	per := nk
	if e.cfg.ExcludeSelf {
		per--
	}
	entries := make([]Entry, nk*per)

	// Each first-key row fills a disjoint region, so rows are free to
	// run in parallel against the read-only index.
	fill := func(a uint64) {
		row := entries[a*per : (a+1)*per]
		i := 0
		next := kmer.Enumerate(k)
		for b, ok := next(); ok; b, ok = next() {
			if e.cfg.ExcludeSelf && b == a {
				continue
			}
			row[i] = Entry{Key: a, Key2: b, Stats: Summarize(PairTimes(ix, a, b))}
			i++
		}
	}

	if e.cfg.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(e.cfg.Workers)
		next := kmer.Enumerate(k)
		for a, ok := next(); ok; a, ok = next() {
			a := a
			g.Go(func() error {
				fill(a)
				return nil
			})
		}
		_ = g.Wait() // rows cannot fail
	} else {
		next := kmer.Enumerate(k)
		for a, ok := next(); ok; a, ok = next() {
			fill(a)
		}
	}
	return &Result{K: k, Variant: Pairwise, Entries: entries}
}
