package ioload

import (
	"bufio"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/phenodb/phenodb/pkg/errcode"
	"github.com/phenodb/phenodb/pkg/phenodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scannerFor(s string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(s))
}

// TestParseHeadings_RoundTrip verifies the documented header contract:
// aliases translate in strain columns, the feature-id column passes
// through verbatim.
func TestParseHeadings_RoundTrip(t *testing.T) {
	sc := scannerFor("ProbeSetID\tB6\tD2\n")

	headings, err := parseHeadings(sc)
	require.NoError(t, err)

	want := []phenodb.Heading{
		{Name: "ProbeSetID", Pos: 0},
		{Name: "C57BL/6J", Pos: 1},
		{Name: "DBA/2J", Pos: 2},
	}
	assert.Equal(t, want, headings)
}

// TestParseHeadings_TrimsWhitespace verifies fields are trimmed before
// translation.
func TestParseHeadings_TrimsWhitespace(t *testing.T) {
	sc := scannerFor(" ProbeSetID \t B6 \t CAST/EiJ \n")

	headings, err := parseHeadings(sc)
	require.NoError(t, err)

	assert.Equal(t, "ProbeSetID", headings[0].Name)
	assert.Equal(t, "C57BL/6J", headings[1].Name)
	assert.Equal(t, "CAST/EiJ", headings[2].Name)
}

// TestParseHeadings_FeatureColumnNotTranslated verifies an alias in
// position 0 is left alone.
func TestParseHeadings_FeatureColumnNotTranslated(t *testing.T) {
	sc := scannerFor("B6\tD2\n")

	headings, err := parseHeadings(sc)
	require.NoError(t, err)

	assert.Equal(t, "B6", headings[0].Name)
	assert.Equal(t, "DBA/2J", headings[1].Name)
}

// TestParseHeadings_SplitsOnTabOnly verifies no alternate delimiter
// detection happens.
func TestParseHeadings_SplitsOnTabOnly(t *testing.T) {
	sc := scannerFor("ProbeSetID B6 D2\n")

	headings, err := parseHeadings(sc)
	require.NoError(t, err)

	require.Len(t, headings, 1)
	assert.Equal(t, "ProbeSetID B6 D2", headings[0].Name)
}

// TestParseHeadings_EmptyFile verifies an input without lines is a
// format error.
func TestParseHeadings_EmptyFile(t *testing.T) {
	sc := scannerFor("")

	_, err := parseHeadings(sc)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.LoadFormatError, gnErr.Code)
}

// TestHeaderStrains verifies strain name extraction skips the
// feature-id column.
func TestHeaderStrains(t *testing.T) {
	headings := []phenodb.Heading{
		{Name: "ProbeSetID", Pos: 0},
		{Name: "C57BL/6J", Pos: 1},
		{Name: "DBA/2J", Pos: 2},
	}
	assert.Equal(t, []string{"C57BL/6J", "DBA/2J"},
		headerStrains(headings))

	assert.Nil(t, headerStrains(headings[:1]))
	assert.Nil(t, headerStrains(nil))
}
