package linker

import "strings"

// seenReads records, for each pair, the base names of reads already folded
// into its coverage.
type seenReads struct {
	byPair map[PairKey]map[string]struct{}
	n      int
}

func newSeenReads() seenReads {
	return seenReads{byPair: map[PairKey]map[string]struct{}{}}
}

func (s *seenReads) alreadyCounted(key PairKey, baseName string) bool {
	_, ok := s.byPair[key][baseName]
	return ok
}

// markCounted records baseName for key.  baseName may alias a scanner
// buffer, so a copy is stored.
func (s *seenReads) markCounted(key PairKey, baseName string) {
	names, ok := s.byPair[key]
	if !ok {
		names = map[string]struct{}{}
		s.byPair[key] = names
	}
	if _, ok := names[baseName]; !ok {
		names[strings.Clone(baseName)] = struct{}{}
		s.n++
	}
}

// release drops the names recorded for key.
func (s *seenReads) release(key PairKey) {
	s.n -= len(s.byPair[key])
	delete(s.byPair, key)
}

// len returns the number of (pair, read) entries.
func (s *seenReads) len() int {
	return s.n
}
