// internal/logging/logging.go
package logging

import (
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New builds the leveled logfmt logger used across the CLI. All log
// output goes to w (stderr in practice, the output stream carries only
// records). quiet wins over lvl and keeps errors only.
func New(w io.Writer, lvl string, quiet bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	opt := level.AllowInfo()
	if quiet {
		opt = level.AllowError()
	} else {
		switch lvl {
		case "debug":
			opt = level.AllowDebug()
		case "warn":
			opt = level.AllowWarn()
		case "error":
			opt = level.AllowError()
		}
	}
	return level.NewFilter(logger, opt)
}
