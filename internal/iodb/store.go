package iodb

import (
	"context"

	"github.com/cheggaaa/pb/v3"
	"github.com/jackc/pgx/v5"
	"github.com/phenodb/phenodb/pkg/db"
	"github.com/phenodb/phenodb/pkg/phenodb"
	"github.com/phenodb/phenodb/pkg/schema"
)

// dataTables lists the tables InsertDataPoints and MaxDataID accept.
// Table names reach SQL text, so anything else is rejected.
var dataTables = map[string]struct{}{
	"probe_data": {},
	"probe_se":   {},
}

// pgxStore implements phenodb.Store on top of a db.Operator pool.
type pgxStore struct {
	operator db.Operator
}

// NewStore creates a phenodb.Store backed by PostgreSQL.
func NewStore(op db.Operator) phenodb.Store {
	return &pgxStore{operator: op}
}

// FetchStrains returns the strains among names that exist for the
// species, keyed by name. One set-membership query; absent names are
// absent keys.
func (s *pgxStore) FetchStrains(
	ctx context.Context,
	names []string,
	speciesID int,
) (map[string]schema.Strain, error) {
	pool := s.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	query := `
		SELECT id, name, species_id
		FROM strains
		WHERE species_id = $1 AND name = ANY($2)
	`

	rows, err := pool.Query(ctx, query, speciesID, names)
	if err != nil {
		return nil, QueryError("strains", err)
	}
	defer rows.Close()

	res := make(map[string]schema.Strain, len(names))
	for rows.Next() {
		var st schema.Strain
		if err := rows.Scan(&st.ID, &st.Name, &st.SpeciesID); err != nil {
			return nil, QueryError("strains", err)
		}
		res[st.Name] = st
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError("strains", err)
	}

	return res, nil
}

// FetchAnnotations returns all annotation records for a platform and
// dataset. This is the single largest read of a run; the result is
// indexed once by the loader and discarded afterwards.
func (s *pgxStore) FetchAnnotations(
	ctx context.Context,
	platformID, datasetID int,
) ([]schema.ProbeAnnotation, error) {
	pool := s.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	query := `
		SELECT id, name, target_id, platform_id, dataset_id
		FROM probe_annotations
		WHERE platform_id = $1 AND dataset_id = $2
	`

	rows, err := pool.Query(ctx, query, platformID, datasetID)
	if err != nil {
		return nil, QueryError("probe_annotations", err)
	}
	defer rows.Close()

	var res []schema.ProbeAnnotation
	for rows.Next() {
		var ann schema.ProbeAnnotation
		err := rows.Scan(
			&ann.ID, &ann.Name, &ann.TargetID,
			&ann.PlatformID, &ann.DatasetID,
		)
		if err != nil {
			return nil, QueryError("probe_annotations", err)
		}
		res = append(res, ann)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError("probe_annotations", err)
	}

	return res, nil
}

// MaxDataID returns the highest assigned id in a data table, zero for an
// empty table.
func (s *pgxStore) MaxDataID(
	ctx context.Context,
	table string,
) (int, error) {
	pool := s.operator.Pool()
	if pool == nil {
		return 0, NotConnectedError()
	}
	if _, ok := dataTables[table]; !ok {
		return 0, UnknownTableError(table)
	}

	query := "SELECT COALESCE(MAX(id), 0) FROM " +
		pgx.Identifier{table}.Sanitize()

	var maxID int
	if err := pool.QueryRow(ctx, query).Scan(&maxID); err != nil {
		return 0, QueryError(table, err)
	}

	return maxID, nil
}

// InsertDataPoints bulk-inserts all points into a data table with
// CopyFrom inside a single transaction. Either every point is committed
// or none is; a copy count that disagrees with len(points) rolls the
// transaction back.
func (s *pgxStore) InsertDataPoints(
	ctx context.Context,
	table string,
	points []phenodb.DataPoint,
) (int, error) {
	pool := s.operator.Pool()
	if pool == nil {
		return 0, NotConnectedError()
	}
	if _, ok := dataTables[table]; !ok {
		return 0, UnknownTableError(table)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, InsertError(table, err)
	}
	// No-op after a successful commit.
	defer tx.Rollback(ctx)

	bar := pb.Full.Start(len(points))
	bar.Set("prefix", "Inserting data points: ")
	bar.Set(pb.CleanOnFinish, true)

	columns := []string{"probe_set_id", "strain_id", "value"}
	copied, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{table},
		columns,
		pgx.CopyFromSlice(len(points), func(i int) ([]any, error) {
			bar.Increment()
			p := points[i]
			return []any{p.ProbeSetID, p.StrainID, p.Value}, nil
		}),
	)
	bar.Finish()
	if err != nil {
		return 0, InsertError(table, err)
	}

	if int(copied) != len(points) {
		return 0, CountMismatchError(table, len(points), int(copied))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, InsertError(table, err)
	}

	return int(copied), nil
}
