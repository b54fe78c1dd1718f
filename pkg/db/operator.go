package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phenodb/phenodb/pkg/config"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the pgxpool.Pool
// for higher-level components (SchemaManager, Store) to execute their
// specialized SQL operations internally.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. Components use it for
	// transactions, bulk inserts (CopyFrom), and custom queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema. Used to decide whether 'create' should ask before
	// touching an existing schema, and whether 'load' can proceed.
	HasTables(ctx context.Context) (bool, error)
}
