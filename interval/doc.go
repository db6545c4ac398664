/*Package interval tracks the reference coverage accumulated by a stream of
  alignment spans.

  Coverage keeps a short list of closed [Start, End] intervals, sorted by
  Start, each tagged with the number of spans folded into it.  Fold merges a
  span into the first interval it overlaps and does not re-merge neighbors
  that the widened interval may now touch, so a list built from chained
  overlaps can contain overlapping entries.  The covered-basepair total is
  then an overestimate of the true union; callers that make threshold
  decisions rely on this exact arithmetic, so it is preserved.
*/
package interval
