package linker

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/txlink/encoding/samevent"
	"github.com/grailbio/txlink/interval"
)

// PairKey identifies an unordered pair of transcripts as "name1:name2", with
// name1 <= name2.
type PairKey string

// NewPairKey returns the key of the pair {a, b}.  NewPairKey(a, b) ==
// NewPairKey(b, a).
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey(a + ":" + b)
}

// Outcome is the disposition of one alignment record.
type Outcome int

const (
	// Accepted means the record passed the name filters of Classify and its
	// span should be passed to Add.
	Accepted Outcome = iota
	// MateUnmapped means the record's mate has no reference.
	MateUnmapped
	// SameTranscript means the record and its mate align to the same
	// transcript.
	SameTranscript
	// AlreadySelected means the record's pair was selected earlier.
	AlreadySelected
	// ReadAlreadyCounted means the record's read (usually its mate) already
	// contributed to the pair.
	ReadAlreadyCounted
	// Accumulating means the record was folded into its pair's coverage and
	// the pair is still below threshold.
	Accumulating
	// Selected means the record brought its pair to threshold.  This is
	// returned once per pair.
	Selected
)

var outcomeNames = [...]string{
	Accepted:           "accepted",
	MateUnmapped:       "mate-unmapped",
	SameTranscript:     "same-transcript",
	AlreadySelected:    "already-selected",
	ReadAlreadyCounted: "read-already-counted",
	Accumulating:       "accumulating",
	Selected:           "selected",
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Alignment is a decoded alignment record.
type Alignment struct {
	ReadID      string
	RefName     string
	MateRefName string
	// Start is the 1-based leftmost reference position.
	Start int
	// SpanLen is the number of reference bases the alignment consumes.
	SpanLen int
}

// End returns the last reference position covered, Start+SpanLen-1.
func (a Alignment) End() int {
	return a.Start + a.SpanLen - 1
}

// Linker holds the state of one linking run: the coverage of each pair still
// below threshold, the set of selected pairs, and the reads already counted.
// Thread compatible.
type Linker struct {
	opts     Opts
	pairs    map[PairKey]*interval.Coverage
	selected map[PairKey]struct{}
	order    []PairKey
	seen     seenReads
	stats    Stats
}

// New creates a Linker.  It returns an error if opts is invalid.
func New(opts Opts) (*Linker, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Linker{
		opts:     opts,
		pairs:    map[PairKey]*interval.Coverage{},
		selected: map[PairKey]struct{}{},
		seen:     newSeenReads(),
	}, nil
}

// Classify applies the filters that need only the reference names of a
// record.  It returns Accepted and the pair key if the record may contribute
// to an unselected pair; the caller should then decode its span and call Add.
// Otherwise it returns the reason for discarding the record.
func (l *Linker) Classify(refName, mateRefName string) (PairKey, Outcome) {
	l.stats.Records++
	switch mateRefName {
	case samevent.MateUnmapped:
		l.stats.MateUnmapped++
		return "", MateUnmapped
	case samevent.MateSameRef, refName:
		l.stats.SameTranscript++
		return "", SameTranscript
	}
	key := NewPairKey(refName, mateRefName)
	if _, ok := l.selected[key]; ok {
		l.stats.AlreadySelected++
		return key, AlreadySelected
	}
	return key, Accepted
}

// Add folds the span [start, end] of read readID into the coverage of pair
// key, which must have been returned by Classify with outcome Accepted.  It
// returns Selected if the pair reaches both thresholds, in which case its
// coverage is released, and Accumulating otherwise.  It returns
// ReadAlreadyCounted without touching coverage if the read's base name was
// already counted for key.
func (l *Linker) Add(key PairKey, readID string, start, end int) Outcome {
	if _, ok := l.selected[key]; ok {
		l.stats.AlreadySelected++
		return AlreadySelected
	}
	name := BaseReadName(readID)
	if l.seen.alreadyCounted(key, name) {
		l.stats.ReadAlreadyCounted++
		return ReadAlreadyCounted
	}
	cov, ok := l.pairs[key]
	if !ok {
		cov = &interval.Coverage{}
		l.pairs[key] = cov
	}
	l.stats.Folded++
	reads, coveredBP := cov.Fold(start, end)
	if reads >= l.opts.MinMatePairCount && coveredBP >= l.opts.MinBpCoverage {
		log.Debug.Printf("%s: selected with %d reads, %d bp (%v)", key, reads, coveredBP, cov)
		l.stats.Selected++
		l.selected[key] = struct{}{}
		l.order = append(l.order, key)
		delete(l.pairs, key)
		if l.opts.PruneSeenReads {
			l.seen.release(key)
		}
		return Selected
	}
	l.seen.markCounted(key, name)
	return Accumulating
}

// Process classifies a and, if accepted, adds its span.  It returns the
// final outcome for a; the pair key is empty unless both reference names
// were usable.
func (l *Linker) Process(a Alignment) (PairKey, Outcome) {
	key, outcome := l.Classify(a.RefName, a.MateRefName)
	if outcome != Accepted {
		return key, outcome
	}
	return key, l.Add(key, a.ReadID, a.Start, a.End())
}

// Selected returns the selected pairs in the order they were selected.  The
// caller must not modify the result.
func (l *Linker) Selected() []PairKey {
	return l.order
}

// IsSelected reports whether key has been selected.
func (l *Linker) IsSelected(key PairKey) bool {
	_, ok := l.selected[key]
	return ok
}

// Coverage returns the current coverage of an unselected pair, or nil if the
// pair has no coverage (it is unseen or already selected).  The caller must
// not modify the result.
func (l *Linker) Coverage(key PairKey) *interval.Coverage {
	return l.pairs[key]
}

// Stats returns the run counters so far.
func (l *Linker) Stats() Stats {
	s := l.stats
	s.SeenReads = l.seen.len()
	s.OpenPairs = len(l.pairs)
	return s
}

// noteMalformed counts a record that was skipped because it could not be
// decoded.  counted is true if Classify already saw the record.
func (l *Linker) noteMalformed(counted bool) {
	if !counted {
		l.stats.Records++
	}
	l.stats.Malformed++
}
