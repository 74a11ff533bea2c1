// core/rtd/extract.go
package rtd

import "rtd-core/scan"

// SameTimes returns the gaps between consecutive occurrences of one
// k-mer: m occurrences yield m-1 gaps, fewer than two yield nil.
func SameTimes(ix *scan.Index, key uint64) []int32 {
	pos := ix.Positions(key)
	if len(pos) < 2 {
		return nil
	}
	gaps := make([]int32, len(pos)-1)
	for i := 1; i < len(pos); i++ {
		gaps[i-1] = pos[i] - pos[i-1]
	}
	return gaps
}

// PairTimes returns, for every occurrence of a, the gap to the nearest
// following occurrence of b. An occurrence of a with nothing after it
// contributes no sample. Both lists are ascending, so one cursor into
// b's list never moves backwards and the walk is linear overall.
func PairTimes(ix *scan.Index, a, b uint64) []int32 {
	pa := ix.Positions(a)
	pb := ix.Positions(b)
	if len(pa) == 0 || len(pb) == 0 {
		return nil
	}
	gaps := make([]int32, 0, len(pa))
	j := 0
	for _, p := range pa {
		for j < len(pb) && pb[j] <= p {
			j++
		}
		if j == len(pb) {
			break
		}
		gaps = append(gaps, pb[j]-p)
	}
	return gaps
}
