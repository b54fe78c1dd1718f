package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/phenodb/phenodb/pkg/errcode"
)

// NotConnectedError creates an error for when schema creation is
// attempted without a database connection.
func NotConnectedError() error {
	msg := "Schema creation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for when GORM cannot wrap the
// existing pgx pool.
func GORMConnectionError(err error) error {
	msg := "Cannot initialize GORM over the database connection"

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot initialize GORM: %w", err),
	}
}

// CreateSchemaError creates an error for a failed AutoMigrate run.
func CreateSchemaError(err error) error {
	msg := `Cannot create database schema

<em>Possible causes:</em>
  - Insufficient database privileges
  - Conflicting tables from another application

<em>How to fix:</em>
  1. Verify the configured user can create tables
  2. Use a dedicated database for PhenoDB`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot create schema: %w", err),
	}
}
