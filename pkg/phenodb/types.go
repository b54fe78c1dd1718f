// Package phenodb provides the public API of PhenoDB: the types that flow
// through the loading pipeline and the interfaces implemented by the
// impure internal/io* packages.
package phenodb

import (
	"time"

	"github.com/google/uuid"
)

// Mode selects which measurement the input matrix carries and which data
// table receives the points.
type Mode int

const (
	// ModeMeans loads mean values into the probe_data table.
	ModeMeans Mode = iota

	// ModeStandardErrors loads standard errors into the probe_se table.
	ModeStandardErrors
)

// Table returns the target data table for the mode.
func (m Mode) Table() string {
	if m == ModeStandardErrors {
		return "probe_se"
	}
	return "probe_data"
}

// String returns a human-readable mode name for logs and messages.
func (m Mode) String() string {
	if m == ModeStandardErrors {
		return "standard errors"
	}
	return "means"
}

// Heading is one column of the input matrix header. Position 0 is the
// feature-id column; positions >= 1 are strain columns with aliases
// already translated to canonical strain names.
type Heading struct {
	Name string
	Pos  int
}

// DataPoint is one (feature, strain, value) measurement destined for a
// data table. It has no identity before insertion; the store assigns ids.
type DataPoint struct {
	ProbeSetID int
	StrainID   int
	Value      float64
}

// RunParams describes one loading run. The CLI resolves all identifiers
// before the pipeline starts.
type RunParams struct {
	// FilePath is the tab-separated input matrix.
	FilePath string

	// Mode selects means or standard errors.
	Mode Mode

	// SpeciesID scopes strain lookups.
	SpeciesID int

	// PlatformID and DatasetID scope annotation lookups.
	PlatformID int
	DatasetID  int

	// RequireAnnotations rejects features that match no annotation by
	// name or by target id.
	RequireAnnotations bool
}

// RunSummary reports the outcome of a successful run.
type RunSummary struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID

	// RowsRead is the number of data rows streamed from the file.
	RowsRead int

	// PointsInserted is the number of data points the store reported
	// as inserted.
	PointsInserted int

	// FirstID and LastID are the id range assigned by the store.
	// Both are zero when the file had no data rows.
	FirstID int
	LastID  int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
