package ioload

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/phenodb/phenodb/pkg/errcode"
	"github.com/phenodb/phenodb/pkg/phenodb"
	"github.com/phenodb/phenodb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeadings(names ...string) []phenodb.Heading {
	headings := make([]phenodb.Heading, len(names))
	for i, n := range names {
		headings[i] = phenodb.Heading{Name: n, Pos: i}
	}
	return headings
}

// TestResolveStrains verifies a header whose strain columns all exist
// returns the full strain map.
func TestResolveStrains(t *testing.T) {
	store := &fakeStore{
		strains: map[string]schema.Strain{
			"C57BL/6J": {ID: 1, Name: "C57BL/6J", SpeciesID: 1},
			"DBA/2J":   {ID: 2, Name: "DBA/2J", SpeciesID: 1},
		},
	}
	headings := testHeadings("ProbeSetID", "C57BL/6J", "DBA/2J")

	strains, err := resolveStrains(context.Background(), store, headings, 1)
	require.NoError(t, err)

	require.Len(t, strains, 2)
	assert.Equal(t, 1, strains["C57BL/6J"].ID)
	assert.Equal(t, 2, strains["DBA/2J"].ID)
}

// TestResolveStrains_MissingStrain verifies the gate is all-or-nothing
// and the error names every missing strain.
func TestResolveStrains_MissingStrain(t *testing.T) {
	store := &fakeStore{
		strains: map[string]schema.Strain{
			"C57BL/6J": {ID: 1, Name: "C57BL/6J", SpeciesID: 1},
		},
	}
	headings := testHeadings("ProbeSetID", "C57BL/6J", "DBA/2J", "CAST/EiJ")

	_, err := resolveStrains(context.Background(), store, headings, 1)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.LoadStrainNotFoundError, gnErr.Code)
	assert.Contains(t, gnErr.Msg, `"DBA/2J"`)
	assert.Contains(t, gnErr.Msg, `"CAST/EiJ"`)
	assert.NotContains(t, gnErr.Msg, `"C57BL/6J"`)
}

// TestResolveStrains_DuplicateColumns verifies a strain repeated in the
// header is reported once, not once per column.
func TestResolveStrains_DuplicateColumns(t *testing.T) {
	store := &fakeStore{strains: map[string]schema.Strain{}}
	headings := testHeadings("ProbeSetID", "DBA/2J", "DBA/2J")

	_, err := resolveStrains(context.Background(), store, headings, 1)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t,
		MissingStrainsMessage([]string{"DBA/2J"}), gnErr.Msg)
}

// TestResolveStrains_StoreError verifies a store failure propagates
// unchanged instead of being reported as missing strains.
func TestResolveStrains_StoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &fakeStore{strainsErr: storeErr}
	headings := testHeadings("ProbeSetID", "C57BL/6J")

	_, err := resolveStrains(context.Background(), store, headings, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
