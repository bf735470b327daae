package fastq

// Record is one sequencing read. Seq and Qual are parallel byte slices;
// Qual holds raw Phred+33 codes as they appeared on the wire.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
	Qual []byte
}

// Header renders the FASTQ header body: "id desc" when a description is
// present, the bare id otherwise.
func (r *Record) Header() string {
	if r.Desc != "" {
		return r.ID + " " + r.Desc
	}
	return r.ID
}

// Empty reports whether the record carries no sequence.
func (r *Record) Empty() bool { return len(r.Seq) == 0 }
