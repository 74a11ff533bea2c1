// internal/writers/jsonl_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"rtd/pkg/api"
)

func TestStartRecordWriterLines(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartRecordWriter(&buf, 4)

	in <- api.RecordV1{
		SequenceID: "a", K: 1, Variant: "same", Length: 4,
		RTD: map[string]api.StatsV1{"A": {Count: 3, Mean: 1, Std: 0}},
	}
	in <- api.RecordV1{SequenceID: "b", K: 1, Variant: "same", Length: 0,
		RTD: map[string]api.StatsV1{}}
	close(in)

	if err := <-errCh; err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	var rec api.RecordV1
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("line 0 not JSON: %v", err)
	}
	if rec.SequenceID != "a" || rec.RTD["A"].Count != 3 {
		t.Errorf("decoded %+v", rec)
	}
}

// Map keys must serialize sorted, which for the 2-bit codec equals
// ascending numeric key order.
func TestRecordKeysSorted(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartRecordWriter(&buf, 1)
	in <- api.RecordV1{
		SequenceID: "s", K: 1, Variant: "same", Length: 1,
		RTD: map[string]api.StatsV1{"T": {}, "A": {}, "G": {}, "C": {}},
	}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	order := []string{`"A"`, `"C"`, `"G"`, `"T"`}
	last := -1
	for _, k := range order {
		i := strings.Index(s, k)
		if i < 0 || i < last {
			t.Fatalf("key %s out of order in %s", k, s)
		}
		last = i
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if IsBrokenPipe(nil) {
		t.Error("nil is not a broken pipe")
	}
}
