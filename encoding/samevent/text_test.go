package samevent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSAM = `@HD	VN:1.0	SO:unsorted
@SQ	SN:c1_g1_i1	LN:1000
@SQ	SN:c2_g1_i1	LN:1000
r1__1	65	c1_g1_i1	10	50	41M	c2_g1_i1	300	0	*	*
r1__2	129	c2_g1_i1	300	50	20M5D16M	c1_g1_i1	10	0	*	*

r2/1	73	c1_g1_i1	100	50	10M100N5M2I3S	*	0	0	*	*
r3	67	c1_g1_i1	5	50	*	=	40	0	*	*
`

type scanned struct {
	line                   int
	readID, refName, mate string
	start, spanLen         int
}

func scanAll(t *testing.T, sc Scanner) []scanned {
	var got []scanned
	for sc.Scan() {
		rec := sc.Record()
		require.NoError(t, rec.Err())
		start, spanLen, err := rec.Span()
		require.NoError(t, err)
		got = append(got, scanned{rec.Line, rec.ReadID, rec.RefName, rec.MateRefName, start, spanLen})
	}
	require.NoError(t, sc.Close())
	return got
}

func TestTextScanner(t *testing.T) {
	got := scanAll(t, NewTextScanner(strings.NewReader(testSAM)))
	assert.Equal(t, []scanned{
		{4, "r1__1", "c1_g1_i1", "c2_g1_i1", 10, 41},
		{5, "r1__2", "c2_g1_i1", "c1_g1_i1", 300, 41},
		{7, "r2/1", "c1_g1_i1", "*", 100, 115},
		{8, "r3", "c1_g1_i1", "=", 5, 0},
	}, got)
}

func TestTextScannerCRLF(t *testing.T) {
	in := "r1\t0\tA\t1\t0\t4M\tB\r\n"
	got := scanAll(t, NewTextScanner(strings.NewReader(in)))
	assert.Equal(t, []scanned{{1, "r1", "A", "B", 1, 4}}, got)
}

func TestTextScannerMalformed(t *testing.T) {
	in := "r1\t0\tA\t1\t0\t4M\n" +
		"r2\t0\tA\tx\t0\t4M\tB\n" +
		"r3\t0\tA\t1\t0\t4Q\tB\n" +
		"r4\t0\tA\t7\t0\t4M\tB\n"
	sc := NewTextScanner(strings.NewReader(in))

	require.True(t, sc.Scan())
	err := sc.Record().Err()
	require.Error(t, err)
	derr, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, 1, derr.Line)
	_, _, err = sc.Record().Span()
	assert.Error(t, err)

	require.True(t, sc.Scan())
	rec := sc.Record()
	assert.NoError(t, rec.Err())
	assert.Equal(t, "B", rec.MateRefName)
	_, _, err = rec.Span()
	require.Error(t, err)
	assert.Equal(t, 2, err.(*DecodeError).Line)
	assert.Contains(t, err.Error(), "POS")

	require.True(t, sc.Scan())
	_, _, err = sc.Record().Span()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CIGAR")

	require.True(t, sc.Scan())
	end, err := sc.Record().End()
	require.NoError(t, err)
	assert.Equal(t, 10, end)

	assert.False(t, sc.Scan())
	assert.NoError(t, sc.Err())
}

func TestGetFields(t *testing.T) {
	var fields [3][]byte
	assert.Equal(t, 3, getFields(fields[:], []byte("a\tb\tc\td")))
	assert.Equal(t, "c", string(fields[2]))
	assert.Equal(t, 2, getFields(fields[:], []byte("a\tb")))
	assert.Equal(t, 3, getFields(fields[:], []byte("a\t\t")))
	assert.Equal(t, "", string(fields[1]))
	assert.Equal(t, "", string(fields[2]))
}

func TestRefLen(t *testing.T) {
	for _, tt := range []struct {
		cigar string
		want  int
	}{
		{"", 0},
		{"*", 0},
		{"100M", 100},
		{"5S10M2I3D4N1=2X3H", 10 + 3 + 4 + 1 + 2},
	} {
		got, err := RefLen([]byte(tt.cigar))
		assert.NoError(t, err, tt.cigar)
		assert.Equal(t, tt.want, got, tt.cigar)
	}
	for _, cigar := range []string{"10M*", "10m", "M", "4Q"} {
		_, err := RefLen([]byte(cigar))
		assert.Error(t, err, cigar)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("BAM")
	assert.NoError(t, err)
	assert.Equal(t, BAM, f)
	f, err = ParseFormat("")
	assert.NoError(t, err)
	assert.Equal(t, Auto, f)
	_, err = ParseFormat("cram")
	assert.Error(t, err)
	assert.Equal(t, BAM, GuessFormat("s3://bucket/x.bam"))
	assert.Equal(t, SAM, GuessFormat("x.sam.gz"))
	assert.Equal(t, SAM, GuessFormat(""))
}
