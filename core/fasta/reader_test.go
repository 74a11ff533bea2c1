// core/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func collect(t *testing.T, path string) []Record {
	t.Helper()
	var recs []Record
	err := StreamCtx(context.Background(), path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatalf("StreamCtx: %v", err)
	}
	return recs
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStreamMultiRecord(t *testing.T) {
	path := writeFile(t, "multi.fa", ">s1 some description\nACGT\nACGT\n\n>s2\nTTTT\n")
	recs := collect(t, path)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "s1" || string(recs[0].Seq) != "ACGTACGT" {
		t.Errorf("first record = %q %q", recs[0].ID, recs[0].Seq)
	}
	if recs[1].ID != "s2" || string(recs[1].Seq) != "TTTT" {
		t.Errorf("second record = %q %q", recs[1].ID, recs[1].Seq)
	}
}

func TestStreamGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">g\nACGTACGT\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	recs := collect(t, path)
	if len(recs) != 1 || recs[0].ID != "g" || string(recs[0].Seq) != "ACGTACGT" {
		t.Fatalf("gzip records = %+v", recs)
	}
}

func TestStreamMissingFile(t *testing.T) {
	err := StreamCtx(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), func(Record) error { return nil })
	if err == nil {
		t.Fatal("expected open error")
	}
}

func TestStreamCancel(t *testing.T) {
	path := writeFile(t, "c.fa", ">a\nAAAA\n>b\nCCCC\n")
	ctx, cancel := context.WithCancel(context.Background())
	err := StreamCtx(ctx, path, func(Record) error {
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestStreamEmitErrorStops(t *testing.T) {
	path := writeFile(t, "e.fa", ">a\nAAAA\n>b\nCCCC\n")
	sentinel := errors.New("stop")
	n := 0
	err := StreamCtx(context.Background(), path, func(Record) error {
		n++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if n != 1 {
		t.Fatalf("emit called %d times after error", n)
	}
}
