/*Package linker finds pairs of assembled transcripts that are joined by
  paired-end reads.

  When one read of a mate pair aligns to transcript A and its mate aligns to
  transcript B, that is evidence that A and B are fragments of the same
  molecule.  A Linker consumes alignment records in input order and
  accumulates, per unordered transcript pair, the number of linking reads and
  the reference coverage of their alignments (see package interval).  A pair
  is selected, and reported exactly once, on the first record after which
  both

    reads     >= Opts.MinMatePairCount
    coveredBP >= Opts.MinBpCoverage

  hold.  After selection, every later record for the pair is discarded by
  name alone, before read-name or span decoding.

  Only one read of each mate pair is counted toward a transcript pair: reads
  are identified by their name with any /1, /2, __1 or __2 suffix removed,
  and the first one seen for the pair wins.  Note that coverage is therefore
  only measured on the transcript the first read aligned to.

  Per-pair lifecycle:

    unseen --first record--> accumulating --thresholds met--> selected

  Selected is terminal; the pair's coverage is released and never rebuilt.

  The Linker is the only state.  Independent runs use independent Linkers.
  Linker is thread compatible, and the order of records determines which
  record triggers selection, so records must be fed in input order.
*/
package linker
