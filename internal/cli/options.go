// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"rtd/internal/version"
)

// Invalid-symbol policies selectable on the command line.
const (
	OnInvalidReset = "reset"
	OnInvalidSkip  = "skip"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Computation
	K                 int
	ReverseComplement bool
	Pairwise          bool
	OnInvalid         string
	Strict            bool
	ExcludeSelf       bool

	// I/O
	Input  string
	Output string

	// Performance
	Threads int

	// Run settings / diagnostics
	ConfigFile string
	LogLevel   string
	Quiet      bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: k-mer return time distributions

Computes, per input sequence, the distribution of gaps between k-mer
occurrences and writes one JSON line per sequence. Logs go to stderr.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Computation
	fs.IntVar(&opt.K, "k", 0, "k-mer length [*]")
	fs.IntVar(&opt.K, "kmer", 0, "k-mer length (alias of -k) [*]")
	fs.BoolVar(&opt.ReverseComplement, "r", false, "distances to reverse-complement k-mers (shorthand) [false]")
	fs.BoolVar(&opt.ReverseComplement, "reverse-complement", false, "distances to reverse-complement k-mers [false]")
	fs.BoolVar(&opt.Pairwise, "p", false, "distances between every ordered k-mer pair (shorthand) [false]")
	fs.BoolVar(&opt.Pairwise, "pairwise", false, "distances between every ordered k-mer pair [false]")
	fs.StringVar(&opt.OnInvalid, "on-invalid", OnInvalidReset, "non-ACGT base handling: reset | skip [reset]")
	fs.BoolVar(&opt.Strict, "strict", false, "abort a sequence on non-ACGT bases [false]")
	fs.BoolVar(&opt.ExcludeSelf, "exclude-self", false, "pairwise: drop k-mer-with-itself entries [false]")

	// I/O
	fs.StringVar(&opt.Input, "input", "-", "FASTA file, '-' for stdin, .gz accepted [-]")
	fs.StringVar(&opt.Output, "output", "-", "JSONL destination, '-' for stdout [-]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads across sequences (0 = all CPUs) [0]")

	// Run settings / diagnostics
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML run-settings file (flags override it) []")
	fs.StringVar(&opt.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress all logs below error [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Legacy positional form: rtd <k> <input> [<output>]
	if args := fs.Args(); len(args) > 0 {
		if opt.K != 0 || len(args) > 3 {
			return opt, fmt.Errorf("unexpected arguments: %v", args)
		}
		if _, err := fmt.Sscanf(args[0], "%d", &opt.K); err != nil {
			return opt, fmt.Errorf("invalid k %q", args[0])
		}
		if len(args) > 1 {
			opt.Input = args[1]
		}
		if len(args) > 2 {
			opt.Output = args[2]
		}
	}

	// Validation
	switch {
	case opt.K <= 0:
		return opt, errors.New("-k is required and must be >= 1")
	case opt.ReverseComplement && opt.Pairwise:
		return opt, errors.New("--reverse-complement conflicts with --pairwise")
	case opt.ExcludeSelf && !opt.Pairwise:
		return opt, errors.New("--exclude-self requires --pairwise")
	case opt.Threads < 0:
		return opt, errors.New("--threads must be >= 0")
	}
	if opt.OnInvalid != OnInvalidReset && opt.OnInvalid != OnInvalidSkip {
		return opt, fmt.Errorf("invalid --on-invalid %q", opt.OnInvalid)
	}
	switch opt.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return opt, fmt.Errorf("invalid --log-level %q", opt.LogLevel)
	}
	return opt, nil
}
