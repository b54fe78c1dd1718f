package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBEmptyDatabaseError
	DBTableCheckError
	DBQueryError
	DBInsertError
	DBCountMismatchError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Load errors
	LoadFileError
	LoadFormatError
	LoadStrainNotFoundError
	LoadValueParseError
	LoadAnnotationError
)
