// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/mariofajardo/chopper/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	// Filtering
	MinQual   float64
	MinLength int
	MaxLength int

	// Trimming
	HeadCrop int
	TailCrop int

	// Performance
	Threads int

	// Contamination screening
	Contam string

	// I/O
	Input  string
	Output string

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: filtering and trimming of long-read fastq streams

Reads fastq on stdin and writes the reads passing all filters to stdout.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Filtering
	fs.Float64Var(&opt.MinQual, "q", 0, "minimum average read quality (shorthand) [0]")
	fs.Float64Var(&opt.MinQual, "quality", 0, "minimum average read quality [0]")
	fs.IntVar(&opt.MinLength, "l", 1, "minimum read length (shorthand) [1]")
	fs.IntVar(&opt.MinLength, "minlength", 1, "minimum read length [1]")
	fs.IntVar(&opt.MaxLength, "maxlength", math.MaxInt32, "maximum read length [2147483647]")

	// Trimming
	fs.IntVar(&opt.HeadCrop, "headcrop", 0, "trim N bases from the start of each read [0]")
	fs.IntVar(&opt.TailCrop, "tailcrop", 0, "trim N bases from the end of each read [0]")

	// Performance
	fs.IntVar(&opt.Threads, "t", 4, "number of worker threads (shorthand) [4]")
	fs.IntVar(&opt.Threads, "threads", 4, "number of worker threads [4]")

	// Contamination screening
	fs.StringVar(&opt.Contam, "c", "", "fasta with contaminant references (shorthand)")
	fs.StringVar(&opt.Contam, "contam", "", "fasta with contaminant references; aligned reads are dropped")

	// I/O
	fs.StringVar(&opt.Input, "input", "-", "fastq input path ('-' = stdin, .gz accepted) [-]")
	fs.StringVar(&opt.Output, "output", "-", "fastq output path ('-' = stdout, .gz compressed) [-]")

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

	// Validation
	if opt.MinQual < 0 {
		return opt, errors.New("--quality must be ≥ 0")
	}
	if opt.MinLength < 1 {
		return opt, errors.New("--minlength must be ≥ 1")
	}
	if opt.MaxLength < opt.MinLength {
		return opt, fmt.Errorf("--maxlength (%d) is smaller than --minlength (%d)", opt.MaxLength, opt.MinLength)
	}
	if opt.HeadCrop < 0 || opt.TailCrop < 0 {
		return opt, errors.New("--headcrop/--tailcrop must be ≥ 0")
	}
	if opt.Threads < 1 {
		return opt, errors.New("--threads must be ≥ 1")
	}
	if len(fs.Args()) > 0 {
		return opt, fmt.Errorf("unexpected argument %q (input is read from stdin or --input)", fs.Args()[0])
	}
	return opt, nil
}
