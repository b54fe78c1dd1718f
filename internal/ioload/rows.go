package ioload

import (
	"bufio"
	"strings"
)

// rowStream yields data rows from the scanner that already consumed the
// header line. It is forward-only and single-pass: once exhausted, the
// only way to read the rows again is to reopen the file and build a new
// stream. Field counts and types are not validated here; mapRow does
// that.
type rowStream struct {
	sc   *bufio.Scanner
	row  []string
	line int
}

// newRowStream wraps a scanner positioned after the header line.
func newRowStream(sc *bufio.Scanner) *rowStream {
	// The header is line 1 of the file.
	return &rowStream{sc: sc, line: 1}
}

// Next advances to the next data row. Returns false at end of input or
// on a read error; check Err afterwards.
func (r *rowStream) Next() bool {
	if !r.sc.Scan() {
		return false
	}
	r.line++

	fields := strings.Split(r.sc.Text(), "\t")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	r.row = fields
	return true
}

// Row returns the current row's trimmed fields. Valid until the next
// call to Next.
func (r *rowStream) Row() []string {
	return r.row
}

// Line returns the 1-based file line number of the current row.
func (r *rowStream) Line() int {
	return r.line
}

// Err returns the first read error encountered by the stream.
func (r *rowStream) Err() error {
	if err := r.sc.Err(); err != nil {
		return ReadError(err)
	}
	return nil
}
