// pkg/api/rtd_v1.go
package api

// StatsV1 is the stable summary of one return-time distribution.
// Count==0 carries zero mean/std by convention, never null.
type StatsV1 struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
}

// RecordV1 is the stable JSONL schema: one line per input sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// RTD keys are decoded k-mers ("ATG") or, for pair variants, a composite
// "first:second" ("ATG:CAT"). Map keys serialize in ascending order.
type RecordV1 struct {
	SequenceID string             `json:"sequence_id"`
	K          int                `json:"k"`
	Variant    string             `json:"variant"` // "same" | "pairwise" | "revcomp"
	Length     int                `json:"length"`
	RTD        map[string]StatsV1 `json:"rtd"`
}
