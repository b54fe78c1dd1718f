package ioload

import (
	"bufio"
	"strings"

	"github.com/phenodb/phenodb/pkg/phenodb"
)

// parseHeadings reads the header line from the scanner and returns one
// heading per column. Columns are split strictly on tab and trimmed.
// Position 0 is the feature-id column and passes through verbatim; every
// later column goes through alias translation.
func parseHeadings(sc *bufio.Scanner) ([]phenodb.Heading, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, ReadError(err)
		}
		return nil, EmptyFileError()
	}

	fields := strings.Split(sc.Text(), "\t")
	headings := make([]phenodb.Heading, len(fields))
	for i, f := range fields {
		name := strings.TrimSpace(f)
		if i > 0 {
			name = translateAlias(name)
		}
		headings[i] = phenodb.Heading{Name: name, Pos: i}
	}

	return headings, nil
}

// headerStrains returns the strain column names, i.e. every heading
// except the feature-id column.
func headerStrains(headings []phenodb.Heading) []string {
	if len(headings) < 2 {
		return nil
	}
	res := make([]string, 0, len(headings)-1)
	for _, h := range headings[1:] {
		res = append(res, h.Name)
	}
	return res
}
