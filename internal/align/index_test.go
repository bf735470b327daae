package align

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// refSeq uses only G/T so its canonical k-mer set cannot collide with a
// query mixing all four bases.
var refSeq = strings.Repeat("GT", 50)

func writeRef(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "contam.fa")
	if err := os.WriteFile(fn, []byte(">chr1 plasmid\n"+refSeq+"\n"), 0o644); err != nil {
		t.Fatalf("write ref: %v", err)
	}
	return fn
}

func TestMapHitOnContainedQuery(t *testing.T) {
	ix, err := BuildIndex(writeRef(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	hits, err := ix.Map([]byte(refSeq[10:90]))
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("expected a hit for a query contained in the reference")
	}
	if hits[0].TargetName != "chr1" {
		t.Fatalf("want target chr1, got %q", hits[0].TargetName)
	}
	if hits[0].SeedCount < MinSeedCount {
		t.Fatalf("best hit below seed threshold: %d", hits[0].SeedCount)
	}
}

func TestMapReverseComplementHit(t *testing.T) {
	ix, err := BuildIndex(writeRef(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// rc of a GT-repeat is an AC-repeat; canonical k-mers make it hit.
	hits, err := ix.Map([]byte(strings.Repeat("AC", 40)))
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("expected reverse-complement query to hit")
	}
}

func TestMapNoHitOnUnrelatedQuery(t *testing.T) {
	ix, err := BuildIndex(writeRef(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	hits, err := ix.Map([]byte(strings.Repeat("ACGT", 20)))
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
}

func TestMapShortQuery(t *testing.T) {
	ix, err := BuildIndex(writeRef(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	hits, err := ix.Map([]byte(refSeq[:K-1])) // below seed length
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected no hits for sub-k query, got %+v", hits)
	}
}

func TestBuildIndexMissingFile(t *testing.T) {
	if _, err := BuildIndex(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing reference")
	}
}
