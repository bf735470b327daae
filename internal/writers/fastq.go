// Package writers owns output presentation: accepted records are
// serialized as 4-line FASTQ by a single writer goroutine, so
// concurrent producers never interleave partial records.
package writers

import (
	"fmt"
	"io"

	"github.com/mariofajardo/chopper/internal/filter"
)

// StartFastqWriter spins up the writer goroutine. Producers send kept
// decisions on the returned channel and must close it when done; the
// first write error (if any) arrives on the error channel after that.
func StartFastqWriter(out io.Writer, bufSize int) (chan<- filter.Decision, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan filter.Decision, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for d := range in {
			if err != nil {
				continue // drain after first failure
			}
			err = WriteRecord(out, d)
		}
		errCh <- err
	}()

	return in, errCh
}

// WriteRecord emits one decision as a complete 4-line FASTQ record.
func WriteRecord(w io.Writer, d filter.Decision) error {
	_, err := fmt.Fprintf(w, "@%s\n%s\n+\n%s\n", d.Header, d.Seq, d.Qual)
	return err
}
