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

	"github.com/shenwei356/xopen"

	"github.com/mariofajardo/chopper/internal/cli"
	"github.com/mariofajardo/chopper/internal/fastq"
	"github.com/mariofajardo/chopper/internal/filter"
	"github.com/mariofajardo/chopper/internal/pipeline"
	"github.com/mariofajardo/chopper/internal/screen"
	"github.com/mariofajardo/chopper/internal/version"
	"github.com/mariofajardo/chopper/internal/writers"
)

// RunContext parses argv, wires the pipeline, and streams records from
// input to output. It returns the process exit code: 0 ok, 2 for
// configuration errors, 3 for runtime failures, 130 when canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("chopper")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "chopper version %s\n", version.Version)
		return 0
	}

	var scr filter.Screener
	if opts.Contam != "" {
		if _, err := os.Stat(opts.Contam); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: contamination reference %s is not readable: %v\n", opts.Contam, err)
			return 2
		}
		s, err := screen.NewFromReference(opts.Contam)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		scr = s
	}

	src, err := fastq.Open(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	defer func() { _ = src.Close() }()

	out := stdout
	var closeOut func() error
	if opts.Output != "-" {
		w, err := xopen.Wopen(opts.Output)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "open output %s: %v\n", opts.Output, err)
			return 2
		}
		out = w
		closeOut = w.Close
	}
	outw := bufio.NewWriter(out)

	inCh, writeErr := writers.StartFastqWriter(outw, opts.Threads*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cfg := pipeline.Config{
		Threads: opts.Threads,
		Filter: filter.Config{
			MinQual:   opts.MinQual,
			MinLength: opts.MinLength,
			MaxLength: opts.MaxLength,
			HeadCrop:  opts.HeadCrop,
			TailCrop:  opts.TailCrop,
		},
	}
	_, perr := pipeline.Run(ctx, cfg, src, scr, func(d filter.Decision) error {
		select {
		case inCh <- d:
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
	if closeOut != nil {
		if e := closeOut(); e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
