package samevent

import (
	"io"

	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

type bamScanner struct {
	reader *bam.Reader
	n      int
	rec    Record
	err    error
}

// NewBAMScanner creates a Scanner that reads BAM records from r in file
// order.  It reads the BAM header before returning.
func NewBAMScanner(r io.Reader) (Scanner, error) {
	reader, err := bam.NewReader(r, 1)
	if err != nil {
		return nil, errors.Wrap(err, "bam header")
	}
	return &bamScanner{reader: reader}, nil
}

// Scan implements Scanner.
func (s *bamScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	r, err := s.reader.Read()
	if err != nil {
		if err != io.EOF {
			s.err = errors.Wrapf(err, "record %d", s.n+1)
		}
		return false
	}
	s.n++
	s.rec = FromSAMRecord(r)
	s.rec.Line = s.n
	sam.PutInFreePool(r)
	return true
}

// Record implements Scanner.
func (s *bamScanner) Record() *Record {
	return &s.rec
}

// Err implements Scanner.
func (s *bamScanner) Err() error {
	return s.err
}

// Close implements Scanner.
func (s *bamScanner) Close() error {
	if err := s.reader.Close(); err != nil && s.err == nil {
		s.err = err
	}
	return s.err
}

// FromSAMRecord converts a decoded sam.Record into a Record, translating the
// mate reference into the text RNEXT convention: MateUnmapped when there is
// no mate reference and MateSameRef when it equals the record's reference.
// Positions are converted to 1-based.  The result does not alias r.
func FromSAMRecord(r *sam.Record) Record {
	rec := Record{
		ReadID:      r.Name,
		RefName:     MateUnmapped,
		MateRefName: MateUnmapped,
	}
	if r.Ref != nil {
		rec.RefName = r.Ref.Name()
	}
	switch {
	case r.MateRef == nil:
	case r.Ref != nil && r.MateRef.ID() == r.Ref.ID():
		rec.MateRefName = MateSameRef
	default:
		rec.MateRefName = r.MateRef.Name()
	}
	refLen, _ := r.Cigar.Lengths()
	rec.setDecoded(r.Pos+1, refLen)
	return rec
}
