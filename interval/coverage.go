package interval

import (
	"bytes"
	"fmt"
)

// Interval is a closed range of reference positions supported by Reads
// alignment spans.
type Interval struct {
	Reads int
	Start int
	End   int
}

// Len returns the number of positions in the interval.  It is zero or
// negative for a degenerate interval with End < Start.
func (iv Interval) Len() int {
	return iv.End - iv.Start + 1
}

// Coverage is the set of intervals accumulated for one transcript pair.  The
// zero value is an empty Coverage ready for use.  Thread compatible.
type Coverage struct {
	intervals []Interval
}

// Fold adds the span [start, end] and returns the total read count and the
// total covered length over all intervals afterwards.
//
// Intervals are scanned in ascending order:
//   - a span that ends before the current interval is inserted in front of it,
//     and the scan stops;
//   - a span that starts after the current interval leaves it unchanged;
//   - otherwise the current interval is widened to include the span and its
//     count incremented, and the scan continues with the next interval.
// A span that matched nothing is appended.  Note that a span merged into
// interval i which ends before interval i+1 starts is also inserted as a new
// interval before i+1.
func (c *Coverage) Fold(start, end int) (reads, coveredBP int) {
	if len(c.intervals) == 0 {
		c.intervals = append(c.intervals, Interval{Reads: 1, Start: start, End: end})
		return 1, end - start + 1
	}
	inserted := false
	for i := range c.intervals {
		iv := c.intervals[i]
		if end < iv.Start {
			c.intervals = append(c.intervals, Interval{})
			copy(c.intervals[i+1:], c.intervals[i:])
			c.intervals[i] = Interval{Reads: 1, Start: start, End: end}
			inserted = true
			break
		}
		if start > iv.End {
			continue
		}
		c.intervals[i] = Interval{Reads: iv.Reads + 1, Start: min(start, iv.Start), End: max(end, iv.End)}
		inserted = true
	}
	if !inserted {
		c.intervals = append(c.intervals, Interval{Reads: 1, Start: start, End: end})
	}
	return c.Totals()
}

// Totals returns the sum of read counts and of interval lengths.
func (c *Coverage) Totals() (reads, coveredBP int) {
	for _, iv := range c.intervals {
		reads += iv.Reads
		coveredBP += iv.Len()
	}
	return
}

// Intervals returns the current interval list.  The caller must not modify
// it.
func (c *Coverage) Intervals() []Interval {
	return c.intervals
}

// Len returns the number of intervals.
func (c *Coverage) Len() int {
	return len(c.intervals)
}

// String returns the intervals as "reads:start-end" items, for debugging.
func (c *Coverage) String() string {
	buf := bytes.Buffer{}
	for i, iv := range c.intervals {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%d:%d-%d", iv.Reads, iv.Start, iv.End)
	}
	return buf.String()
}
