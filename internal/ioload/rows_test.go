package ioload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRowStream verifies a file with a header and N data lines yields
// exactly N rows, in file order, with fields split on tab and trimmed.
func TestRowStream(t *testing.T) {
	sc := scannerFor("ProbeSetID\tB6\tD2\n10\t1.5\t2.5\n11\t 3.0 \t4.0\n")

	// Consume the header the way Load does.
	_, err := parseHeadings(sc)
	require.NoError(t, err)

	stream := newRowStream(sc)

	require.True(t, stream.Next())
	assert.Equal(t, []string{"10", "1.5", "2.5"}, stream.Row())
	assert.Equal(t, 2, stream.Line())

	require.True(t, stream.Next())
	assert.Equal(t, []string{"11", "3.0", "4.0"}, stream.Row())
	assert.Equal(t, 3, stream.Line())

	assert.False(t, stream.Next())
	assert.NoError(t, stream.Err())
}

// TestRowStream_NoDataRows verifies a header-only file yields zero rows
// without error.
func TestRowStream_NoDataRows(t *testing.T) {
	sc := scannerFor("ProbeSetID\tB6\n")

	_, err := parseHeadings(sc)
	require.NoError(t, err)

	stream := newRowStream(sc)
	assert.False(t, stream.Next())
	assert.NoError(t, stream.Err())
}

// TestRowStream_LineNumbers verifies line numbers are file positions,
// not row indices: the first data row is line 2.
func TestRowStream_LineNumbers(t *testing.T) {
	sc := scannerFor("h1\th2\na\tb\nc\td\ne\tf\n")

	_, err := parseHeadings(sc)
	require.NoError(t, err)

	stream := newRowStream(sc)
	var lines []int
	for stream.Next() {
		lines = append(lines, stream.Line())
	}
	require.NoError(t, stream.Err())
	assert.Equal(t, []int{2, 3, 4}, lines)
}
