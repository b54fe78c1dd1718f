package ioload

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/phenodb/phenodb/pkg/errcode"
)

// MissingStrainsMessage builds the exact user-facing message for a
// failed strain gate: every missing name quoted and comma-joined,
// followed by one fixed explanatory sentence. Existing curator tooling
// scrapes this format; do not reword it casually.
func MissingStrainsMessage(missing []string) string {
	quoted := make([]string, len(missing))
	for i, name := range missing {
		quoted[i] = `"` + name + `"`
	}
	return fmt.Sprintf(
		"Strains %s do not exist in the database for this species. "+
			"Every data column heading must be a known strain name or alias.",
		strings.Join(quoted, ", "),
	)
}

// FileOpenError creates an error for an input file that cannot be
// opened.
func FileOpenError(path string, err error) error {
	msg := `Cannot open input file <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.LoadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open input file: %w", err),
	}
}

// ReadError creates an error for a failure while reading the input
// file.
func ReadError(err error) error {
	msg := "Reading the input file failed"

	return &gn.Error{
		Code: errcode.LoadFileError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("reading input file failed: %w", err),
	}
}

// EmptyFileError creates an error for an input file without a header
// line.
func EmptyFileError() error {
	msg := `The input file has no lines.
The first line must be a tab-separated header: a feature-id column
followed by strain columns.`

	return &gn.Error{
		Code: errcode.LoadFormatError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("input file has no header line"),
	}
}

// RowLengthError creates an error for a data row whose field count does
// not match the header.
func RowLengthError(line, want, got int) error {
	msg := `Line <em>%d</em> has <em>%d</em> fields, the header has <em>%d</em> columns.
Every data row must have exactly one tab-separated field per column.`
	vars := []any{line, got, want}

	return &gn.Error{
		Code: errcode.LoadFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"line %d has %d fields, expected %d", line, got, want),
	}
}

// StrainNotFoundError creates an error for header strains absent from
// the reference store. The message enumerates every missing name, not
// just the first.
func StrainNotFoundError(missing []string) error {
	return &gn.Error{
		Code: errcode.LoadStrainNotFoundError,
		Msg:  MissingStrainsMessage(missing),
		Vars: nil,
		Err: fmt.Errorf(
			"strains not found: %s", strings.Join(missing, ", ")),
	}
}

// ValueParseError creates an error for a cell that fails numeric
// coercion, naming the offending column and line.
func ValueParseError(column string, line int, value string) error {
	msg := `Cannot parse value <em>%q</em> in column <em>%s</em> on line <em>%d</em>.
Feature ids must be non-negative integers; data cells must be numbers
with at least one digit before any decimal point.`
	vars := []any{value, column, line}

	return &gn.Error{
		Code: errcode.LoadValueParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"cannot parse %q in column %s on line %d",
			value, column, line),
	}
}

// AnnotationMissingError creates an error for a feature that matches no
// annotation record by name or by target id.
func AnnotationMissingError(feature string, line int) error {
	msg := `Feature <em>%s</em> on line <em>%d</em> has no annotation record
for the selected platform and dataset.`
	vars := []any{feature, line}

	return &gn.Error{
		Code: errcode.LoadAnnotationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"feature %s on line %d has no annotation", feature, line),
	}
}

// InsertCountError creates an error for an inserted count that does not
// match the number of produced points, even when the store raised no
// error of its own.
func InsertCountError(table string, want, got int) error {
	msg := `The store reports <em>%d</em> inserted rows for <em>%s</em>, expected <em>%d</em>.`
	vars := []any{got, table, want}

	return &gn.Error{
		Code: errcode.DBCountMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"store reports %d inserted rows for %s, expected %d",
			got, table, want),
	}
}

// CancelledError creates an error for a cancelled load run.
func CancelledError(err error) error {
	msg := "Load run was cancelled"

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}
