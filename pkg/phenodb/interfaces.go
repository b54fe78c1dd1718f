package phenodb

import (
	"context"

	"github.com/phenodb/phenodb/pkg/schema"
)

// Store is the reference-store boundary the loading pipeline consumes.
// The pipeline only reads Strain and ProbeAnnotation records and treats
// them as immutable snapshots for the duration of one run.
type Store interface {
	// FetchStrains returns the strains among names that exist for the
	// species, keyed by strain name. Missing names are simply absent
	// from the result; the caller decides whether that is fatal.
	FetchStrains(
		ctx context.Context,
		names []string,
		speciesID int,
	) (map[string]schema.Strain, error)

	// FetchAnnotations returns all annotation records scoped to a
	// platform and dataset.
	FetchAnnotations(
		ctx context.Context,
		platformID, datasetID int,
	) ([]schema.ProbeAnnotation, error)

	// MaxDataID returns the highest id assigned in the given data
	// table, or zero for an empty table. Used for reporting the
	// inserted id range, never for generating ids.
	MaxDataID(ctx context.Context, table string) (int, error)

	// InsertDataPoints inserts all points into the given data table as
	// a single atomic operation and returns the inserted count. On any
	// failure the table is left unchanged.
	InsertDataPoints(
		ctx context.Context,
		table string,
		points []DataPoint,
	) (int, error)
}

// Loader drives the full read-validate-map-insert pipeline for one file
// and one mode.
type Loader interface {
	// Load runs the pipeline: parse headings, validate strains, resolve
	// annotations, stream and map rows, insert, verify. Any gate
	// failure aborts the run before the store is touched by the
	// insertion step.
	Load(ctx context.Context, params RunParams) (*RunSummary, error)
}

// SchemaManager creates the database schema. Creation is idempotent and
// safe to run on an existing database.
type SchemaManager interface {
	Create(ctx context.Context) error
}
