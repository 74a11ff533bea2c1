// core/rtd/stats.go
package rtd

import "math"

// Stats is the descriptive summary of one return-time distribution.
// Count==0 means the k-mer (or pair) produced no gaps; Mean and StdDev
// are then 0 by convention so consumers never see NaN.
type Stats struct {
	Count  int
	Mean   float64
	StdDev float64
}

// Summarize reduces a gap sequence to count, mean, and population
// standard deviation. Single-pass Welford update keeps the result
// numerically stable for large gap values; StdDev is 0 for count <= 1.
func Summarize(gaps []int32) Stats {
	n := len(gaps)
	if n == 0 {
		return Stats{}
	}
	var mean, m2 float64
	for i, g := range gaps {
		d := float64(g) - mean
		mean += d / float64(i+1)
		m2 += d * (float64(g) - mean)
	}
	var sd float64
	if n > 1 {
		sd = math.Sqrt(m2 / float64(n))
	}
	return Stats{Count: n, Mean: mean, StdDev: sd}
}
