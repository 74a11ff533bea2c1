// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"

	"rtd-core/kmer"
	"rtd-core/rtd"
	"rtd-core/scan"

	"rtd/internal/cli"
	"rtd/internal/config"
	"rtd/internal/logging"
	"rtd/internal/output"
	"rtd/internal/pipeline"
	"rtd/internal/version"
	"rtd/internal/writers"
)

// Exit codes: 0 ok, 1 input/compute error, 2 usage, 3 write error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("rtd")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "rtd version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	if opts.ConfigFile != "" {
		cf, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		cf.Apply(&opts, func(name string) bool { return set[name] })
	}

	logger := logging.New(stderr, opts.LogLevel, opts.Quiet)

	if err := kmer.CheckK(opts.K); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	variant := rtd.SameKmer
	switch {
	case opts.Pairwise:
		variant = rtd.Pairwise
	case opts.ReverseComplement:
		variant = rtd.ReverseComplement
	}
	policy := scan.PolicyReset
	if opts.OnInvalid == cli.OnInvalidSkip {
		policy = scan.PolicySkip
	}
	if opts.Strict {
		policy = scan.PolicyStrict
	}

	eng := rtd.New(rtd.Config{
		Variant:     variant,
		Policy:      policy,
		ExcludeSelf: opts.ExcludeSelf,
		Workers:     opts.Threads,
	})

	dest := io.Writer(outw)
	var fileOut *os.File
	if opts.Output != "-" && opts.Output != "" {
		fh, err := os.Create(opts.Output)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		defer fh.Close() // no-op on the success path, which closes explicitly
		dest = fh
		fileOut = fh
	}

	_ = level.Info(logger).Log(
		"msg", "computing return time distributions",
		"k", opts.K, "variant", variant.String(), "input", opts.Input,
	)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	inCh, writeErr := writers.StartRecordWriter(dest, 64)

	total := 0
	perr := pipeline.ForEachResult(ctx, pipeline.Config{Threads: opts.Threads, K: opts.K},
		opts.Input, eng,
		func(o pipeline.Output) error {
			rec := output.ToAPIRecord(o.ID, o.Length, o.Result)
			select {
			case inCh <- rec:
				total++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	// The writer goroutine has flushed by now; a failed close can still
	// lose buffered data, so it counts as a write error.
	if fileOut != nil {
		if e := fileOut.Close(); e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_ = level.Error(logger).Log("msg", "run failed", "err", perr)
		// Write failures surface through writeErr/Flush above, so
		// whatever reaches here is input- or compute-side.
		return 1
	}

	_ = level.Info(logger).Log("msg", "done", "sequences", total)
	return 0
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
