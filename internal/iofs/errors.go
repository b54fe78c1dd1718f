package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/phenodb/phenodb/pkg/errcode"
)

// CreateDirError creates an error for when a required directory cannot
// be created.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory <em>%s</em>`
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create dir: %w", err),
	}
}

// CopyFileError creates an error for when a default file cannot be
// written to its destination.
func CopyFileError(path string, err error) error {
	msg := `Cannot write file <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write file: %w", err),
	}
}

// ReadFileError creates an error for when a configuration file cannot
// be read or parsed.
func ReadFileError(path string, err error) error {
	msg := `Cannot read file <em>%s</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read file: %w", err),
	}
}
