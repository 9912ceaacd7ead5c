package gfa

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFilter(t *testing.T, input string) (string, *Filter, error) {
	t.Helper()
	var out bytes.Buffer
	f := NewFilter()
	err := f.Run(strings.NewReader(input), &out)
	return out.String(), f, err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name, in, out string
	}{
		{
			name: "orientation ignored",
			in:   "H header\nL x + y - 10M\nL x + y + 10M\n",
			out:  "H header\nL x + y - 10M\n",
		},
		{
			name: "self-loop",
			in:   "L x + x + 10M\n",
			out:  "",
		},
		{
			name: "reversed endpoints",
			in:   "L a + b + 5M\nL b + a - 5M\nL c + d + 3M\n",
			out:  "L a + b + 5M\nL c + d + 3M\n",
		},
		{
			name: "identical lines",
			in:   "L x + y + 10M\nL x + y + 10M\n",
			out:  "L x + y + 10M\n",
		},
		{
			name: "overlap differs",
			in:   "L x + y + 10M\nL y - x - 99M\n",
			out:  "L x + y + 10M\n",
		},
		{
			name: "self-loops never emitted",
			in:   "L x + x + 1M\nS x ACGT\nL x - x - 1M\nL x + x + 1M\n",
			out:  "S x ACGT\n",
		},
		{
			name: "non-link lines untouched",
			in:   "H\tVN:Z:1.0  \nS\ta\tACGT\nS\ta\tACGT\nP\tp\ta+,b-\t*\n\n#comment\n",
			out:  "H\tVN:Z:1.0\nS\ta\tACGT\nS\ta\tACGT\nP\tp\ta+,b-\t*\n\n#comment\n",
		},
		{
			name: "no trailing newline",
			in:   "S a ACGT\nL a + b + 0M",
			out:  "S a ACGT\nL a + b + 0M\n",
		},
		{
			name: "crlf",
			in:   "S a ACGT\r\nL a + b + 0M\r\nL b + a + 0M\r\n",
			out:  "S a ACGT\nL a + b + 0M\n",
		},
		{
			name: "empty input",
			in:   "",
			out:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runFilter(t, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestRunMalformed(t *testing.T) {
	in := "H header\nL a + b + 1M\nL onlytwofields\nL c + d + 1M\nS z ACGT\n"
	out, f, err := runFilter(t, in)
	require.Error(t, err)

	merr, ok := AsMalformed(err)
	require.True(t, ok)
	assert.Equal(t, "L onlytwofields", merr.Line)

	assert.Equal(t, "H header\nL a + b + 1M\n", out, "output before the bad line is kept")
	assert.False(t, f.Seen(NewEdgeKey("c", "d")), "nothing after the bad line is processed")
	assert.Equal(t, 3, f.Stats().Lines)
}

func TestLineRecordsKeyForDroppedLinks(t *testing.T) {
	f := NewFilter()

	_, keep, err := f.Line("L x + x + 0M")
	require.NoError(t, err)
	assert.False(t, keep)
	assert.True(t, f.Seen(EdgeKey{"x", "x"}))

	out, keep, err := f.Line("L x + y + 0M\n")
	require.NoError(t, err)
	assert.True(t, keep)
	assert.Equal(t, "L x + y + 0M", out)

	_, keep, err = f.Line("L y + x + 0M")
	require.NoError(t, err)
	assert.False(t, keep)

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, Stats{Lines: 3, Links: 3, Kept: 1, Duplicates: 1, SelfLoops: 1}, f.Stats())
}

func TestFiltersAreIndependent(t *testing.T) {
	a, b := NewFilter(), NewFilter()
	_, keep, _ := a.Line("L x + y + 0M")
	assert.True(t, keep)
	_, keep, _ = b.Line("L x + y + 0M")
	assert.True(t, keep)
}

func TestRunLongLine(t *testing.T) {
	seq := strings.Repeat("ACGT", 1<<16)
	in := "S a " + seq + "\nL a + b + 0M\n"
	out, _, err := runFilter(t, in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestRunReadError(t *testing.T) {
	var out bytes.Buffer
	err := NewFilter().Run(failingReader{}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	_, ok := AsMalformed(err)
	assert.False(t, ok)
}
