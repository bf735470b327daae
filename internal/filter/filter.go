// Package filter holds the per-record accept/reject decision.
package filter

import (
	"github.com/mariofajardo/chopper/internal/fastq"
	"github.com/mariofajardo/chopper/internal/qual"
)

// Config are the filtering thresholds, fixed for the run.
type Config struct {
	MinQual   float64
	MinLength int
	MaxLength int
	HeadCrop  int
	TailCrop  int
}

// Screener is the contamination check consumed by Evaluate. A nil
// Screener disables screening.
type Screener interface {
	IsContaminant(seq []byte) (bool, error)
}

// Decision is the outcome for one record. When Keep is true, Seq and
// Qual are the trimmed slices to emit under Header.
type Decision struct {
	Keep   bool
	Header string
	Seq    []byte
	Qual   []byte
}

// Evaluate applies the filter gates to one record. Quality and length
// are judged on the untrimmed read; trimming applies only to what is
// emitted. The gate order is fixed: a read the crops would consume is
// dropped before any threshold is consulted, and screening runs last so
// cheap checks shed records before the aligner sees them.
func Evaluate(rec fastq.Record, cfg Config, scr Screener) (Decision, error) {
	if rec.Empty() {
		return Decision{}, nil
	}
	readLen := len(rec.Seq)
	if cfg.HeadCrop+cfg.TailCrop >= readLen {
		return Decision{}, nil
	}
	if qual.AvgPhred(rec.Qual) < cfg.MinQual {
		return Decision{}, nil
	}
	if readLen < cfg.MinLength || readLen > cfg.MaxLength {
		return Decision{}, nil
	}
	if scr != nil {
		hit, err := scr.IsContaminant(rec.Seq)
		if err != nil {
			return Decision{}, err
		}
		if hit {
			return Decision{}, nil
		}
	}
	return Decision{
		Keep:   true,
		Header: rec.Header(),
		Seq:    rec.Seq[cfg.HeadCrop : readLen-cfg.TailCrop],
		Qual:   rec.Qual[cfg.HeadCrop : readLen-cfg.TailCrop],
	}, nil
}
