package ioload

import (
	"regexp"
	"strconv"

	"github.com/phenodb/phenodb/pkg/phenodb"
	"github.com/phenodb/phenodb/pkg/schema"
)

// valueRx accepts numeric cells with at least one digit before any
// decimal point: "100", "-3.5", "0.4444". It rejects "0.", ".4444" and
// anything non-numeric.
var valueRx = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// mapRow converts one raw row into one data point per strain column.
// The row must have exactly one field per heading; a mismatch is a
// format error, never a silent truncation. Produces len(headings)-1
// points on success.
func mapRow(
	row []string,
	line int,
	headings []phenodb.Heading,
	strains map[string]schema.Strain,
) ([]phenodb.DataPoint, error) {
	if len(row) != len(headings) {
		return nil, RowLengthError(line, len(headings), len(row))
	}

	probeSetID, err := parseFeatureID(row[0])
	if err != nil {
		return nil, ValueParseError(headings[0].Name, line, row[0])
	}

	points := make([]phenodb.DataPoint, 0, len(headings)-1)
	for _, h := range headings[1:] {
		cell := row[h.Pos]
		if !valueRx.MatchString(cell) {
			return nil, ValueParseError(h.Name, line, cell)
		}
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, ValueParseError(h.Name, line, cell)
		}

		strain, ok := strains[h.Name]
		if !ok {
			// The strain gate runs before mapping; a miss here means
			// the headings and the resolver map went out of sync.
			return nil, StrainNotFoundError([]string{h.Name})
		}

		points = append(points, phenodb.DataPoint{
			ProbeSetID: probeSetID,
			StrainID:   strain.ID,
			Value:      value,
		})
	}

	return points, nil
}

// parseFeatureID coerces the feature-id field to a non-negative integer.
func parseFeatureID(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
