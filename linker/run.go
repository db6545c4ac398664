package linker

import (
	"bufio"
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/txlink/encoding/samevent"
)

const ctxCheckInterval = 1 << 16

// Run reads every record from sc, in order, and writes the key of each
// selected pair to out on its own line, in selection order.  A record that
// cannot be decoded fails the run unless opts.SkipMalformed is set.  Records
// discarded by Classify are never span-decoded, so their malformed POS or
// CIGAR fields go unnoticed.  Keys selected before a failure are still
// written to out.  Run does not close sc.
func Run(ctx context.Context, opts Opts, sc samevent.Scanner, out io.Writer) (stats Stats, err error) {
	l, err := New(opts)
	if err != nil {
		return Stats{}, err
	}
	w := bufio.NewWriter(out)
	defer func() {
		once := errors.Once{}
		once.Set(err)
		once.Set(w.Flush())
		err = once.Err()
	}()
	malformed := func(err error, counted bool) error {
		if !opts.SkipMalformed {
			return errors.E(errors.Invalid, err)
		}
		log.Error.Printf("skipping malformed record: %v", err)
		l.noteMalformed(counted)
		return nil
	}
	for sc.Scan() {
		rec := sc.Record()
		if err := rec.Err(); err != nil {
			if err := malformed(err, false); err != nil {
				return l.Stats(), err
			}
			continue
		}
		key, outcome := l.Classify(rec.RefName, rec.MateRefName)
		n := l.stats.Records
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return l.Stats(), err
			}
		}
		if opts.ProgressInterval > 0 && n%opts.ProgressInterval == 0 {
			log.Printf("%d record(s) processed, %d pair(s) selected", n, l.stats.Selected)
		}
		if outcome != Accepted {
			continue
		}
		start, spanLen, err := rec.Span()
		if err != nil {
			if err := malformed(err, true); err != nil {
				return l.Stats(), err
			}
			continue
		}
		if l.Add(key, rec.ReadID, start, start+spanLen-1) == Selected {
			if _, err := w.WriteString(string(key) + "\n"); err != nil {
				return l.Stats(), err
			}
		}
	}
	return l.Stats(), sc.Err()
}
