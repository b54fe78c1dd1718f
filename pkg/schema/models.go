// Package schema provides database schema models for PhenoDB.
// Reference tables (strains, probe_annotations) are curated outside this
// tool; the loader only reads them. Data tables (probe_data, probe_se)
// receive the loaded measurements.
package schema

// Strain is a named biological line, scoped to a species.
type Strain struct {
	// ID is assigned by the reference store.
	ID int `gorm:"column:id;primaryKey;autoIncrement"`

	// Name is the canonical strain designation, e.g. "C57BL/6J".
	Name string `gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_strains_species_name"`

	// SpeciesID scopes the strain to a species.
	SpeciesID int `gorm:"column:species_id;not null;uniqueIndex:idx_strains_species_name"`
}

// TableName returns the PostgreSQL table name for Strain.
func (Strain) TableName() string { return "strains" }

// ProbeAnnotation links a probe name to further identifiers, scoped to a
// platform and dataset.
type ProbeAnnotation struct {
	ID int `gorm:"column:id;primaryKey;autoIncrement"`

	// Name is the probe name as it appears in measurement files.
	// May be empty for records identified only by target.
	Name string `gorm:"column:name;type:varchar(100);index"`

	// TargetID is the identifier of the measured target. Nil when the
	// record carries no target.
	TargetID *int `gorm:"column:target_id;index"`

	// PlatformID and DatasetID scope which uploads the annotation
	// applies to.
	PlatformID int `gorm:"column:platform_id;not null;index:idx_annotations_scope"`
	DatasetID  int `gorm:"column:dataset_id;not null;index:idx_annotations_scope"`
}

// TableName returns the PostgreSQL table name for ProbeAnnotation.
func (ProbeAnnotation) TableName() string { return "probe_annotations" }

// ProbeData is one mean measurement: a (probe set, strain, value) cell of
// an uploaded matrix.
type ProbeData struct {
	ID         int     `gorm:"column:id;primaryKey;autoIncrement"`
	ProbeSetID int     `gorm:"column:probe_set_id;not null;index"`
	StrainID   int     `gorm:"column:strain_id;not null;index"`
	Value      float64 `gorm:"column:value;not null"`
}

// TableName returns the PostgreSQL table name for ProbeData.
func (ProbeData) TableName() string { return "probe_data" }

// ProbeSE is one standard-error measurement, parallel to ProbeData.
type ProbeSE struct {
	ID         int     `gorm:"column:id;primaryKey;autoIncrement"`
	ProbeSetID int     `gorm:"column:probe_set_id;not null;index"`
	StrainID   int     `gorm:"column:strain_id;not null;index"`
	Value      float64 `gorm:"column:value;not null"`
}

// TableName returns the PostgreSQL table name for ProbeSE.
func (ProbeSE) TableName() string { return "probe_se" }
