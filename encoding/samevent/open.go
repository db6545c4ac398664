package samevent

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"v.io/x/lib/vlog"
)

// Format is an input encoding.
type Format int

const (
	// Auto picks the format from the path: BAM for "*.bam", SAM otherwise.
	Auto Format = iota
	// SAM is tab-delimited text, optionally gzip-compressed.
	SAM
	// BAM is binary SAM.
	BAM
)

// ParseFormat parses "auto", "sam" or "bam".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return Auto, nil
	case "sam":
		return SAM, nil
	case "bam":
		return BAM, nil
	}
	return Auto, errors.Errorf("unknown input format %q", name)
}

// GuessFormat returns the format implied by path.
func GuessFormat(path string) Format {
	if strings.HasSuffix(path, ".bam") {
		return BAM
	}
	return SAM
}

// IsStdin reports whether path names the standard input.
func IsStdin(path string) bool {
	return path == "" || path == "-"
}

type fileScanner struct {
	Scanner
	ctx context.Context
	in  file.File
	gz  io.Closer
}

// Close implements Scanner.  It also closes the underlying file.
func (s *fileScanner) Close() error {
	err := s.Scanner.Close()
	if s.gz != nil {
		if e := s.gz.Close(); e != nil && err == nil {
			err = e
		}
	}
	if s.in != nil {
		if e := s.in.Close(s.ctx); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Open creates a Scanner for path, which may be any path supported by
// grailbio/base/file.  An empty path or "-" reads the standard input.  SAM
// input whose name ends in ".gz" is decompressed.
func Open(ctx context.Context, path string, format Format) (Scanner, error) {
	if format == Auto {
		format = GuessFormat(path)
	}
	vlog.VI(1).Infof("%s: reading as %v", path, format)
	s := &fileScanner{ctx: ctx}
	var reader io.Reader = os.Stdin
	if !IsStdin(path) {
		in, err := file.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		s.in = in
		reader = in.Reader(ctx)
	}
	var err error
	switch format {
	case BAM:
		s.Scanner, err = NewBAMScanner(reader)
	default:
		if fileio.DetermineType(path) == fileio.Gzip {
			var gz *gzip.Reader
			if gz, err = gzip.NewReader(reader); err != nil {
				err = errors.Wrap(err, path)
				break
			}
			s.gz = gz
			reader = gz
		}
		s.Scanner = NewTextScanner(reader)
	}
	if err != nil {
		if s.in != nil {
			_ = s.in.Close(ctx)
		}
		return nil, err
	}
	return s, nil
}

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case SAM:
		return "sam"
	case BAM:
		return "bam"
	}
	return "auto"
}
