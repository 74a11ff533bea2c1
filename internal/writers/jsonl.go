// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"errors"
	"io"
	"syscall"

	"rtd/internal/jsonlutil"
	"rtd/pkg/api"
)

// StartRecordWriter streams each RecordV1 as one JSON line.
func StartRecordWriter(out io.Writer, bufSize int) (chan<- api.RecordV1, <-chan error) {
	return jsonlutil.Start[api.RecordV1](out, bufSize,
		func(enc *json.Encoder, r api.RecordV1) error {
			return enc.Encode(r)
		},
		IsBrokenPipe,
	)
}

// IsBrokenPipe reports whether an error is a broken/closed pipe, so a
// downstream `head` closing early still counts as success.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
