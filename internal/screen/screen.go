// Package screen decides whether a read is a contaminant by mapping it
// against a reference set.
package screen

import (
	"fmt"

	"github.com/mariofajardo/chopper/internal/align"
)

// Aligner maps a query sequence against a prebuilt reference index and
// returns candidate hits, best first.
type Aligner interface {
	Map(query []byte) ([]align.Hit, error)
}

// Screener answers hit/no-hit contamination queries. Classification is
// binary: only the best hit's target identity is inspected, never its
// score.
type Screener struct {
	al Aligner
}

// New wraps an existing aligner.
func New(al Aligner) *Screener { return &Screener{al: al} }

// NewFromReference builds the reference index from a FASTA path and
// returns a screener over it. Called once per run, before any record is
// evaluated.
func NewFromReference(path string) (*Screener, error) {
	ix, err := align.BuildIndex(path)
	if err != nil {
		return nil, err
	}
	return &Screener{al: ix}, nil
}

// IsContaminant reports whether seq aligns to any named reference. An
// aligner failure on a well-formed sequence is unexpected and fatal for
// the run.
func (s *Screener) IsContaminant(seq []byte) (bool, error) {
	hits, err := s.al.Map(seq)
	if err != nil {
		return false, fmt.Errorf("align query: %w", err)
	}
	return len(hits) > 0 && hits[0].TargetName != "", nil
}
