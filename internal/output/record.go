// internal/output/record.go
package output

import (
	"rtd-core/kmer"
	"rtd-core/rtd"

	"rtd/pkg/api"
)

// PairSep joins the two decoded k-mers of a pair identifier.
const PairSep = ":"

// ToAPIRecord converts one computed result into the stable wire shape.
// Identifiers are decoded k-mer strings; pair variants use
// "first:second". The codec's A<C<G<T ordering makes JSON's sorted map
// keys match the result's ascending key order.
func ToAPIRecord(seqID string, seqLen int, res *rtd.Result) api.RecordV1 {
	m := make(map[string]api.StatsV1, len(res.Entries))
	paired := res.Variant != rtd.SameKmer
	for _, e := range res.Entries {
		id := kmer.Unpack(e.Key, res.K)
		if paired {
			id += PairSep + kmer.Unpack(e.Key2, res.K)
		}
		m[id] = api.StatsV1{
			Count: e.Stats.Count,
			Mean:  e.Stats.Mean,
			Std:   e.Stats.StdDev,
		}
	}
	return api.RecordV1{
		SequenceID: seqID,
		K:          res.K,
		Variant:    res.Variant.String(),
		Length:     seqLen,
		RTD:        m,
	}
}
