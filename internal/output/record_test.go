// internal/output/record_test.go
package output

import (
	"testing"

	"rtd-core/rtd"
)

func TestToAPIRecordSameVariant(t *testing.T) {
	res, err := rtd.New(rtd.Config{}).Compute([]byte("ATGATGATG"), 3)
	if err != nil {
		t.Fatal(err)
	}
	rec := ToAPIRecord("seq1", 9, res)

	if rec.SequenceID != "seq1" || rec.K != 3 || rec.Variant != "same" || rec.Length != 9 {
		t.Errorf("header fields: %+v", rec)
	}
	if len(rec.RTD) != 64 {
		t.Fatalf("entries = %d, want 64", len(rec.RTD))
	}
	atg, ok := rec.RTD["ATG"]
	if !ok {
		t.Fatal("ATG missing")
	}
	if atg.Count != 2 || atg.Mean != 3 || atg.Std != 0 {
		t.Errorf("ATG = %+v, want {2 3 0}", atg)
	}
	if zero := rec.RTD["CCC"]; zero.Count != 0 || zero.Mean != 0 || zero.Std != 0 {
		t.Errorf("CCC = %+v, want zero sentinel", rec.RTD["CCC"])
	}
}

func TestToAPIRecordPairIdentifiers(t *testing.T) {
	res, err := rtd.New(rtd.Config{Variant: rtd.Pairwise}).Compute([]byte("ATAT"), 1)
	if err != nil {
		t.Fatal(err)
	}
	rec := ToAPIRecord("s", 4, res)
	if rec.Variant != "pairwise" {
		t.Errorf("variant = %q", rec.Variant)
	}
	if len(rec.RTD) != 16 {
		t.Fatalf("entries = %d, want 16", len(rec.RTD))
	}
	at, ok := rec.RTD["A"+PairSep+"T"]
	if !ok {
		t.Fatal("A:T missing")
	}
	if at.Count != 2 || at.Mean != 1 {
		t.Errorf("A:T = %+v, want count 2 mean 1", at)
	}
	if ta := rec.RTD["T"+PairSep+"A"]; ta.Count != 1 {
		t.Errorf("T:A count = %d, want 1", ta.Count)
	}
}

func TestToAPIRecordRevCompIdentifiers(t *testing.T) {
	res, err := rtd.New(rtd.Config{Variant: rtd.ReverseComplement}).Compute([]byte("ATGCAT"), 3)
	if err != nil {
		t.Fatal(err)
	}
	rec := ToAPIRecord("s", 6, res)
	if rec.Variant != "revcomp" {
		t.Errorf("variant = %q", rec.Variant)
	}
	if _, ok := rec.RTD["ATG"+PairSep+"CAT"]; !ok {
		t.Error("ATG:CAT identifier missing")
	}
}
