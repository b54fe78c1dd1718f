package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/phenodb/phenodb/pkg/errcode"
)

// ConnectionError creates an error for a failed PostgreSQL connection.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL

<em>Host:</em> %s:%d
<em>Database:</em> %s
<em>User:</em> %s

<em>How to fix:</em>
  1. Check that PostgreSQL is running
  2. Verify connection settings in config.yaml or PHENODB_* env vars
  3. Verify the database exists and the user has access`

	vars := []any{host, port, database, user}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot connect to database: %w", err),
	}
}

// NotConnectedError creates an error for when an operation is attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError creates an error for a failed table-existence check.
func TableCheckError(err error) error {
	msg := "Cannot check database tables"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot check tables: %w", err),
	}
}

// UnknownTableError creates an error for a data-table name outside the
// known set.
func UnknownTableError(table string) error {
	msg := `Unknown data table <em>%s</em>`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown data table '%s'", table),
	}
}

// QueryError creates an error for a failed read query.
func QueryError(table string, err error) error {
	msg := `Query against <em>%s</em> failed`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("query against %s failed: %w", table, err),
	}
}

// InsertError creates an error for a failed bulk insert. The enclosing
// transaction is rolled back, so the table is unchanged.
func InsertError(table string, err error) error {
	msg := `Bulk insert into <em>%s</em> failed, no rows were written`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bulk insert into %s failed: %w", table, err),
	}
}

// CountMismatchError creates an error for when the store reports a
// different number of inserted rows than was submitted. The transaction
// is rolled back.
func CountMismatchError(table string, want, got int) error {
	msg := `Inserted row count for <em>%s</em> is <em>%d</em>, expected <em>%d</em>.
The transaction was rolled back, no rows were written.`
	vars := []any{table, got, want}

	return &gn.Error{
		Code: errcode.DBCountMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"inserted %d rows into %s, expected %d", got, table, want),
	}
}
