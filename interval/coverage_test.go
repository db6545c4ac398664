package interval

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

type span struct{ start, end int }

func foldAll(c *Coverage, spans []span) (reads, bp int) {
	for _, s := range spans {
		reads, bp = c.Fold(s.start, s.end)
	}
	return
}

func TestFold(t *testing.T) {
	tests := []struct {
		spans     []span
		wantReads int
		wantBP    int
		want      []Interval
	}{
		{
			[]span{{10, 50}},
			1, 41,
			[]Interval{{1, 10, 50}},
		},
		{
			// Disjoint.
			[]span{{10, 50}, {60, 100}},
			2, 82,
			[]Interval{{1, 10, 50}, {1, 60, 100}},
		},
		{
			// Overlap.
			[]span{{10, 50}, {40, 80}},
			2, 71,
			[]Interval{{2, 10, 80}},
		},
		{
			// Contained.
			[]span{{10, 50}, {20, 30}},
			2, 41,
			[]Interval{{2, 10, 50}},
		},
		{
			// Inserted in front.
			[]span{{60, 100}, {10, 50}},
			2, 82,
			[]Interval{{1, 10, 50}, {1, 60, 100}},
		},
		{
			// Inserted between.
			[]span{{10, 20}, {60, 100}, {30, 40}},
			3, 63,
			[]Interval{{1, 10, 20}, {1, 30, 40}, {1, 60, 100}},
		},
		{
			// Adjacent but not overlapping spans stay separate.
			[]span{{10, 20}, {21, 30}},
			2, 21,
			[]Interval{{1, 10, 20}, {1, 21, 30}},
		},
		{
			// Touching at one position merges.
			[]span{{10, 20}, {20, 30}},
			2, 21,
			[]Interval{{2, 10, 30}},
		},
		{
			// A span bridging two intervals widens both; the list then
			// overlaps and the covered length double counts.
			[]span{{10, 50}, {60, 100}, {40, 70}},
			4, 61 + 61,
			[]Interval{{2, 10, 70}, {2, 40, 100}},
		},
		{
			// A span merged into the first interval that ends before the
			// second is also inserted in front of the second.
			[]span{{10, 50}, {100, 150}, {40, 60}},
			4, 51 + 21 + 51,
			[]Interval{{2, 10, 60}, {1, 40, 60}, {1, 100, 150}},
		},
		{
			// Degenerate span.
			[]span{{10, 9}},
			1, 0,
			[]Interval{{1, 10, 9}},
		},
	}
	for i, tt := range tests {
		c := Coverage{}
		reads, bp := foldAll(&c, tt.spans)
		expect.EQ(t, reads, tt.wantReads, "test %d", i)
		expect.EQ(t, bp, tt.wantBP, "test %d", i)
		expect.EQ(t, c.Intervals(), tt.want, "test %d", i)
	}
}

func TestTotalsMatchFold(t *testing.T) {
	c := Coverage{}
	for _, s := range []span{{5, 10}, {1, 3}, {8, 20}, {2, 9}, {30, 29}} {
		reads, bp := c.Fold(s.start, s.end)
		r2, bp2 := c.Totals()
		expect.EQ(t, reads, r2)
		expect.EQ(t, bp, bp2)
	}
}

func TestString(t *testing.T) {
	c := Coverage{}
	c.Fold(10, 50)
	c.Fold(60, 100)
	expect.EQ(t, c.String(), "1:10-50,1:60-100")
	expect.EQ(t, c.Len(), 2)
}
