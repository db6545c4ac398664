package linker

import (
	"io"
	"strconv"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
)

// Stats counts the dispositions of records seen by a Linker.
type Stats struct {
	// Records is the number of non-header records.
	Records int
	// MateUnmapped counts records whose mate has no reference.
	MateUnmapped int
	// SameTranscript counts records whose mate is on the same transcript.
	SameTranscript int
	// AlreadySelected counts records discarded because their pair had been
	// selected.
	AlreadySelected int
	// ReadAlreadyCounted counts records discarded because their read had
	// already contributed to the pair.
	ReadAlreadyCounted int
	// Folded counts records whose span was added to a pair's coverage.
	Folded int
	// Selected is the number of pairs selected.
	Selected int
	// Malformed counts records skipped because they could not be decoded.
	Malformed int
	// SeenReads is the number of (pair, read) entries held for deduplication.
	SeenReads int
	// OpenPairs is the number of pairs with coverage still below threshold.
	OpenPairs int
}

type statsField struct {
	name string
	val  func(s Stats) int
}

var statsFields = []statsField{
	{"records", func(s Stats) int { return s.Records }},
	{"mate_unmapped", func(s Stats) int { return s.MateUnmapped }},
	{"same_transcript", func(s Stats) int { return s.SameTranscript }},
	{"already_selected", func(s Stats) int { return s.AlreadySelected }},
	{"read_already_counted", func(s Stats) int { return s.ReadAlreadyCounted }},
	{"folded", func(s Stats) int { return s.Folded }},
	{"selected", func(s Stats) int { return s.Selected }},
	{"malformed", func(s Stats) int { return s.Malformed }},
	{"seen_reads", func(s Stats) int { return s.SeenReads }},
	{"open_pairs", func(s Stats) int { return s.OpenPairs }},
}

// Log writes a summary of s to the info log.
func (s Stats) Log() {
	log.Printf("There were %d non-header record(s) total", s.Records)
	log.Printf("There were %d single-read mappings unused", s.MateUnmapped)
	log.Printf("There were %d same-transcript mappings unused", s.SameTranscript)
	log.Printf("There were %d pairing(s) added", s.Selected)
	log.Printf("There were %d record(s) ignored for already-selected pairs", s.AlreadySelected)
	log.Printf("There were %d record(s) ignored for mates of already-used reads", s.ReadAlreadyCounted)
	if s.Malformed > 0 {
		log.Printf("There were %d malformed record(s) skipped", s.Malformed)
	}
	log.Printf("Reads held for deduplication: %d, pairs below threshold: %d", s.SeenReads, s.OpenPairs)
}

// WriteTSV writes s as a two-column "name value" table with a header line.
func (s Stats) WriteTSV(w io.Writer) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("name")
	tw.WriteString("value")
	if err := tw.EndLine(); err != nil {
		return err
	}
	for _, f := range statsFields {
		tw.WriteString(f.name)
		tw.WriteString(strconv.Itoa(f.val(s)))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}
