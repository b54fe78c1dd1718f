// Package ioload implements the Loader interface: the read-validate-
// map-insert pipeline that turns a tab-separated measurement matrix into
// rows of a data table. This is an impure I/O package that reads the
// input file and talks to the reference store through phenodb.Store.
package ioload

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/phenodb/phenodb/pkg/config"
	"github.com/phenodb/phenodb/pkg/phenodb"
	"github.com/phenodb/phenodb/pkg/schema"
)

// maxLineBytes bounds a single header or data line. Matrices with
// hundreds of strain columns overflow bufio.Scanner's default limit.
const maxLineBytes = 16 * 1024 * 1024

// loader implements the phenodb.Loader interface.
type loader struct {
	cfg   *config.Config
	store phenodb.Store
}

// New creates a new Loader.
func New(cfg *config.Config, store phenodb.Store) phenodb.Loader {
	return &loader{cfg: cfg, store: store}
}

// Load drives the pipeline for one file and one mode: parse headings,
// validate strains, resolve annotations, stream and map rows, insert,
// verify. Every stage is a hard gate; the first failure aborts the run
// and nothing reaches the store's data tables.
func (l *loader) Load(
	ctx context.Context,
	params phenodb.RunParams,
) (*phenodb.RunSummary, error) {
	start := time.Now()
	runID := uuid.New()

	slog.Info("Starting data load",
		"run_id", runID,
		"file", params.FilePath,
		"mode", params.Mode.String(),
		"species_id", params.SpeciesID,
		"platform_id", params.PlatformID,
		"dataset_id", params.DatasetID,
	)

	file, err := os.Open(params.FilePath)
	if err != nil {
		return nil, FileOpenError(params.FilePath, err)
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	gn.Info("(1/5) Parsing header of <em>%s</em>",
		filepath.Base(params.FilePath))
	headings, err := parseHeadings(sc)
	if err != nil {
		return nil, err
	}
	slog.Info("Parsed header",
		"run_id", runID, "columns", len(headings))

	gn.Info("(2/5) Validating strain columns...")
	strains, err := resolveStrains(ctx, l.store, headings, params.SpeciesID)
	if err != nil {
		return nil, err
	}
	gn.Message("<em>All %d strain columns match known strains</em>",
		len(headings)-1)

	gn.Info("(3/5) Resolving probe annotations...")
	annotations, err := resolveAnnotations(
		ctx, l.store, params.PlatformID, params.DatasetID)
	if err != nil {
		return nil, err
	}
	slog.Info("Annotation indices built",
		"run_id", runID,
		"by_name", len(annotations.byName),
		"by_target", len(annotations.byTarget),
	)

	gn.Info("(4/5) Reading data rows...")
	rowsRead, points, err := l.mapRows(ctx, sc, params, headings,
		strains, annotations)
	if err != nil {
		return nil, err
	}
	slog.Info("Rows mapped",
		"run_id", runID, "rows", rowsRead, "points", len(points))

	table := params.Mode.Table()

	// The id range is reported, not generated; the store assigns ids.
	maxID, err := l.store.MaxDataID(ctx, table)
	if err != nil {
		return nil, err
	}

	gn.Info("(5/5) Inserting %s data points into <em>%s</em>...",
		humanize.Comma(int64(len(points))), table)
	inserted, err := l.store.InsertDataPoints(ctx, table, points)
	if err != nil {
		return nil, err
	}
	if inserted != len(points) {
		return nil, InsertCountError(table, len(points), inserted)
	}

	summary := &phenodb.RunSummary{
		RunID:          runID,
		RowsRead:       rowsRead,
		PointsInserted: inserted,
		Elapsed:        time.Since(start),
	}
	if inserted > 0 {
		summary.FirstID = maxID + 1
		summary.LastID = maxID + inserted
	}

	slog.Info("Load complete",
		"run_id", runID,
		"rows", summary.RowsRead,
		"points", summary.PointsInserted,
		"first_id", summary.FirstID,
		"last_id", summary.LastID,
		"duration", gnfmt.TimeString(summary.Elapsed.Seconds()),
	)

	return summary, nil
}

// mapRows streams the data rows in file order and maps each one to data
// points. The stream is single-pass; a parse failure on any row fails
// the whole run, there is no best-effort skipping.
func (l *loader) mapRows(
	ctx context.Context,
	sc *bufio.Scanner,
	params phenodb.RunParams,
	headings []phenodb.Heading,
	strains map[string]schema.Strain,
	annotations *annotationIndex,
) (int, []phenodb.DataPoint, error) {
	var points []phenodb.DataPoint
	rowsRead := 0

	stream := newRowStream(sc)
	for stream.Next() {
		select {
		case <-ctx.Done():
			return 0, nil, CancelledError(ctx.Err())
		default:
		}

		row := stream.Row()
		pts, err := mapRow(row, stream.Line(), headings, strains)
		if err != nil {
			return 0, nil, err
		}

		if params.RequireAnnotations {
			if _, ok := annotations.lookup(row[0]); !ok {
				return 0, nil, AnnotationMissingError(row[0], stream.Line())
			}
		}

		rowsRead++
		points = append(points, pts...)
	}
	if err := stream.Err(); err != nil {
		return 0, nil, err
	}

	return rowsRead, points, nil
}
