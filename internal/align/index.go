// Package align provides a small in-process seed aligner used for
// contamination screening. References are indexed once by canonical
// k-mer; a query maps to a reference when enough of its k-mers hit the
// same target. The constants follow long-read mapping practice (k=15,
// minimum chain of 3 seeds), trading base-level alignment for a cheap
// hit/no-hit answer, which is all screening needs.
package align

import (
	"fmt"
	"io"
	"sort"

	"github.com/shenwei356/bio/seqio/fastx"
)

const (
	// K is the seed length.
	K = 15
	// MinSeedCount is the minimum number of seed matches a target must
	// collect before a query is reported as aligned to it.
	MinSeedCount = 3
)

// Hit is one candidate alignment between a query and a reference.
type Hit struct {
	TargetName string
	SeedCount  int
}

// Index is an immutable k-mer index over a reference set. Safe for
// concurrent Map calls once built.
type Index struct {
	names []string
	seeds map[uint64][]int32
}

// BuildIndex reads a FASTA/FASTQ reference set from path and indexes
// every canonical k-mer of every reference sequence.
func BuildIndex(path string) (*Index, error) {
	fx, err := fastx.NewReader(nil, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("build contamination index %s: %w", path, err)
	}
	defer fx.Close()

	ix := &Index{seeds: make(map[uint64][]int32, 1<<16)}
	for {
		rec, err := fx.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("build contamination index %s: %w", path, err)
		}
		tid := int32(len(ix.names))
		ix.names = append(ix.names, string(rec.ID))
		forEachKmer(rec.Seq.Seq, func(km uint64) {
			ids := ix.seeds[km]
			// Collapse repeats within one reference; targets are indexed
			// sequentially so checking the tail suffices.
			if n := len(ids); n > 0 && ids[n-1] == tid {
				return
			}
			ix.seeds[km] = append(ids, tid)
		})
	}
	if len(ix.names) == 0 {
		return nil, fmt.Errorf("build contamination index %s: no reference sequences", path)
	}
	return ix, nil
}

// Map aligns query against the index and returns candidate hits, best
// first (most supporting seeds). An empty slice means no alignment. The
// error return satisfies the aligner contract; the in-process index
// cannot fail on a well-formed query.
func (ix *Index) Map(query []byte) ([]Hit, error) {
	counts := make(map[int32]int)
	forEachKmer(query, func(km uint64) {
		for _, tid := range ix.seeds[km] {
			counts[tid]++
		}
	})

	var hits []Hit
	for tid, n := range counts {
		if n >= MinSeedCount {
			hits = append(hits, Hit{TargetName: ix.names[tid], SeedCount: n})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].SeedCount != hits[j].SeedCount {
			return hits[i].SeedCount > hits[j].SeedCount
		}
		return hits[i].TargetName < hits[j].TargetName
	})
	return hits, nil
}

// forEachKmer walks the canonical K-mers of seq with a rolling 2-bit
// encoding, restarting after any non-ACGT base.
func forEachKmer(seq []byte, fn func(uint64)) {
	const mask = uint64(1)<<(2*K) - 1
	var fwd, rev uint64
	run := 0
	for _, b := range seq {
		c := baseCode(b)
		if c > 3 {
			run = 0
			continue
		}
		fwd = (fwd<<2 | c) & mask
		rev = rev>>2 | (3-c)<<(2*(K-1))
		if run++; run < K {
			continue
		}
		if fwd <= rev {
			fn(fwd)
		} else {
			fn(rev)
		}
	}
}

func baseCode(b byte) uint64 {
	switch b {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't':
		return 3
	default:
		return 4
	}
}
