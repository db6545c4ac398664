package linker

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Opts configures a Linker.
type Opts struct {
	// MinBpCoverage is the minimum covered length, in bases, of the
	// alignments linking two transcripts.  Inclusive.
	MinBpCoverage int
	// MinMatePairCount is the minimum number of mate pairs linking two
	// transcripts.  Inclusive.  It has no useful default and must be set by
	// the caller.
	MinMatePairCount int

	// PruneSeenReads releases the read names recorded for a pair once the
	// pair is selected.  Selected pairs are filtered before any read lookup,
	// so this changes only memory use and Stats.SeenReads.
	PruneSeenReads bool

	// SkipMalformed makes Run log and skip records that cannot be decoded
	// instead of failing.
	SkipMalformed bool
	// ProgressInterval is the number of records between progress log lines.
	// Zero disables progress logging.
	ProgressInterval int
}

// DefaultOpts holds the default options.  MinMatePairCount is deliberately
// left at zero.
var DefaultOpts = Opts{
	MinBpCoverage:    250,
	ProgressInterval: 10000000,
}

// Validate checks the options for consistency.
func (o *Opts) Validate() error {
	if o.MinBpCoverage < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("min bp coverage must be >= 0, got %d", o.MinBpCoverage))
	}
	if o.MinMatePairCount < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("min mate pair count must be >= 0, got %d", o.MinMatePairCount))
	}
	if o.ProgressInterval < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("progress interval must be >= 0, got %d", o.ProgressInterval))
	}
	return nil
}
