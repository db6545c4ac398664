package samevent

import (
	"fmt"
	"strconv"

	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

const (
	// MateUnmapped is the RNEXT value of a record whose mate is unavailable.
	MateUnmapped = "*"
	// MateSameRef is the RNEXT value of a record whose mate aligns to the same
	// reference.
	MateSameRef = "="
)

// DecodeError reports a record that could not be decoded.
type DecodeError struct {
	// Line is the 1-based input line (or record ordinal, for BAM).
	Line int
	Err  error
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Line, e.Err)
}

// Cause returns the underlying error.
func (e *DecodeError) Cause() error { return e.Err }

// Record is one alignment record.  For text input, the string fields alias
// the scanner's buffer and are valid only until the next call to Scan; copy
// them to retain them.
type Record struct {
	// Line is the 1-based line number of the record (text), or the 1-based
	// ordinal of the record (BAM).
	Line int
	// ReadID is QNAME, including any /1, /2, __1 or __2 mate suffix.
	ReadID string
	// RefName is RNAME.
	RefName string
	// MateRefName is RNEXT: MateUnmapped, MateSameRef, or a reference name.
	MateRefName string

	err        error
	posField   []byte
	cigarField []byte
	decoded    bool
	start      int
	spanLen    int
}

// Err returns the decode error for a record that is missing required fields,
// or nil.
func (r *Record) Err() error {
	return r.err
}

// Span returns the 1-based leftmost reference position of the alignment and
// the number of reference bases it consumes (the sum of the M, =, X, D and N
// CIGAR operation lengths).  A missing ("*") CIGAR yields a zero length.
func (r *Record) Span() (start, spanLen int, err error) {
	if r.err != nil {
		return 0, 0, r.err
	}
	if r.decoded {
		return r.start, r.spanLen, nil
	}
	if r.start, err = strconv.Atoi(gunsafe.BytesToString(r.posField)); err != nil {
		r.err = &DecodeError{Line: r.Line, Err: errors.Wrapf(err, "bad POS %q", r.posField)}
		return 0, 0, r.err
	}
	if r.spanLen, err = RefLen(r.cigarField); err != nil {
		r.err = &DecodeError{Line: r.Line, Err: err}
		return 0, 0, r.err
	}
	r.decoded = true
	return r.start, r.spanLen, nil
}

// End returns the last reference position covered by the alignment,
// start+spanLen-1.  It is less than the start for a zero-length span.
func (r *Record) End() (int, error) {
	start, spanLen, err := r.Span()
	if err != nil {
		return 0, err
	}
	return start + spanLen - 1, nil
}

// RefLen returns the reference length consumed by a text CIGAR.  An empty
// or "*" CIGAR has length zero.  The CIGAR must be well formed: unknown or
// lowercase operations and stray characters (e.g. "10M*") are errors, where
// a scan that only sums the digits before M, =, X, D and N would accept
// them.
func RefLen(cigar []byte) (int, error) {
	if len(cigar) == 0 {
		return 0, nil
	}
	c, err := sam.ParseCigar(cigar)
	if err != nil {
		return 0, errors.Wrapf(err, "bad CIGAR %q", cigar)
	}
	ref, _ := c.Lengths()
	return ref, nil
}

// setDecoded stores an already-decoded span.
func (r *Record) setDecoded(start, spanLen int) {
	r.start = start
	r.spanLen = spanLen
	r.decoded = true
}
