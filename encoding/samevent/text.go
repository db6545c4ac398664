package samevent

import (
	"bufio"
	"bytes"
	"io"

	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/pkg/errors"
)

const (
	// Index of each column used, counting from zero.
	colQName = 0
	colRName = 2
	colPos   = 3
	colCigar = 5
	colRNext = 6
	// nCols is the number of leading columns that must be present.
	nCols = colRNext + 1

	maxLineLen = 64 << 20
)

// getFields splits curLine at tabs into fields, filling at most len(fields)
// entries, and returns the number filled.  The remainder of the line after
// the last requested field is ignored.
func getFields(fields [][]byte, curLine []byte) int {
	pos := 0
	for i := range fields {
		if pos > len(curLine) {
			return i
		}
		end := bytes.IndexByte(curLine[pos:], '\t')
		if end < 0 {
			fields[i] = curLine[pos:]
			return i + 1
		}
		fields[i] = curLine[pos : pos+end]
		pos += end + 1
	}
	return len(fields)
}

type textScanner struct {
	scanner *bufio.Scanner
	fields  [nCols][]byte
	line    int
	rec     Record
	err     error
}

// NewTextScanner creates a Scanner that reads tab-delimited SAM text.  Header
// lines (starting with '@') and empty lines are skipped.  The SAM header is
// not required; reference names are taken verbatim from each line.
func NewTextScanner(r io.Reader) Scanner {
	s := bufio.NewScanner(r)
	// SEQ and QUAL make SAM lines arbitrarily long, and bufio.Scanner does
	// not grow its buffer past the limit set here.
	s.Buffer(make([]byte, 0, 64<<10), maxLineLen)
	return &textScanner{scanner: s}
}

// Scan implements Scanner.
func (s *textScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.scanner.Scan() {
		s.line++
		curLine := s.scanner.Bytes()
		if n := len(curLine); n > 0 && curLine[n-1] == '\r' {
			curLine = curLine[:n-1]
		}
		if len(curLine) == 0 || curLine[0] == '@' {
			continue
		}
		s.rec = Record{Line: s.line}
		if n := getFields(s.fields[:], curLine); n < nCols {
			s.rec.err = &DecodeError{Line: s.line, Err: errors.Errorf("found %d columns, need at least %d", n, nCols)}
			return true
		}
		s.rec.ReadID = gunsafe.BytesToString(s.fields[colQName])
		s.rec.RefName = gunsafe.BytesToString(s.fields[colRName])
		s.rec.MateRefName = gunsafe.BytesToString(s.fields[colRNext])
		s.rec.posField = s.fields[colPos]
		s.rec.cigarField = s.fields[colCigar]
		return true
	}
	if err := s.scanner.Err(); err != nil {
		s.err = errors.Wrapf(err, "line %d", s.line+1)
	}
	return false
}

// Record implements Scanner.
func (s *textScanner) Record() *Record {
	return &s.rec
}

// Err implements Scanner.
func (s *textScanner) Err() error {
	return s.err
}

// Close implements Scanner.
func (s *textScanner) Close() error {
	return s.err
}
