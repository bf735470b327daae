package fastq

import (
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

func init() {
	// Reads are passed through verbatim; alphabet validation would only
	// slow the stream down.
	seq.ValidateSeq = false
}

// Reader streams Records from a FASTQ file. The path "-" means stdin;
// gzip-compressed input is decompressed transparently.
type Reader struct {
	fx *fastx.Reader
}

// Open prepares a streaming reader over path.
func Open(path string) (*Reader, error) {
	fx, err := fastx.NewReader(nil, path, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("open fastq %s: %w", path, err)
	}
	return &Reader{fx: fx}, nil
}

// Read returns the next record, or io.EOF at end of stream. Any other
// error means the stream is malformed and the run must abort. The
// returned Record owns its bytes and stays valid across calls.
func (r *Reader) Read() (Record, error) {
	rec, err := r.fx.Read()
	if err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("parse fastq record: %w", err)
	}
	id := string(rec.ID)
	out := Record{
		ID:   id,
		Desc: descFrom(string(rec.Name), id),
		Seq:  append([]byte(nil), rec.Seq.Seq...),
		Qual: append([]byte(nil), rec.Seq.Qual...),
	}
	if len(out.Qual) != len(out.Seq) {
		return Record{}, fmt.Errorf("record %s: sequence and quality lengths differ (%d != %d)",
			id, len(out.Seq), len(out.Qual))
	}
	return out, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	r.fx.Close()
	return nil
}

// descFrom splits the free-text description off a full header line.
// fastx parses the ID as the first whitespace-delimited token, so the
// remainder of Name (if any) is the description.
func descFrom(name, id string) string {
	if len(name) <= len(id) {
		return ""
	}
	return strings.TrimSpace(name[len(id):])
}
