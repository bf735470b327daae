package fastq

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const twoRecords = "@r1 runid=abc ch=1\nACGTACGTAC\n+\nIIIIIIIIII\n" +
	"@r2\nTTTT\n+\n!!!!\n"

func writeFastq(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write fastq: %v", err)
	}
	return fn
}

func readAll(t *testing.T, path string) []Record {
	t.Helper()
	r, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	var recs []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		recs = append(recs, rec)
	}
}

func TestReadSplitsIDAndDescription(t *testing.T) {
	recs := readAll(t, writeFastq(t, "in.fastq", twoRecords))
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	r1 := recs[0]
	if r1.ID != "r1" || r1.Desc != "runid=abc ch=1" {
		t.Fatalf("bad header split: %+v", r1)
	}
	if r1.Header() != "r1 runid=abc ch=1" {
		t.Fatalf("bad header render: %q", r1.Header())
	}
	if string(r1.Seq) != "ACGTACGTAC" || string(r1.Qual) != "IIIIIIIIII" {
		t.Fatalf("bad seq/qual: %+v", r1)
	}
	r2 := recs[1]
	if r2.Desc != "" || r2.Header() != "r2" {
		t.Fatalf("description leaked into bare header: %+v", r2)
	}
}

func TestReadGzippedInput(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "in.fastq.gz")
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gz := gzip.NewWriter(fh)
	if _, err := gz.Write([]byte(twoRecords)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	recs := readAll(t, fn)
	if len(recs) != 2 || recs[0].ID != "r1" {
		t.Fatalf("gzip round trip failed: %+v", recs)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.fastq")); err == nil {
		t.Fatal("expected error for missing input")
	}
}
