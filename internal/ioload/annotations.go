package ioload

import (
	"context"
	"strconv"

	"github.com/phenodb/phenodb/pkg/phenodb"
	"github.com/phenodb/phenodb/pkg/schema"
)

// annotationIndex holds the two lookup indices built from one annotation
// fetch: by probe name and by target id. On a duplicate key the later
// record overwrites the earlier one; this last-write-wins behavior is
// inherited from the historical curation workflow and preserved on
// purpose.
type annotationIndex struct {
	byName   map[string]schema.ProbeAnnotation
	byTarget map[int]schema.ProbeAnnotation
}

// resolveAnnotations fetches all annotation records scoped to a platform
// and dataset and builds both indices in a single pass. This is the
// single largest cost of a run; the fetch happens exactly once and the
// indices live only for the run's duration.
func resolveAnnotations(
	ctx context.Context,
	store phenodb.Store,
	platformID, datasetID int,
) (*annotationIndex, error) {
	records, err := store.FetchAnnotations(ctx, platformID, datasetID)
	if err != nil {
		return nil, err
	}

	idx := &annotationIndex{
		byName:   make(map[string]schema.ProbeAnnotation, len(records)),
		byTarget: make(map[int]schema.ProbeAnnotation, len(records)),
	}
	for _, rec := range records {
		if rec.Name != "" {
			idx.byName[rec.Name] = rec
		}
		if rec.TargetID != nil {
			idx.byTarget[*rec.TargetID] = rec
		}
	}

	return idx, nil
}

// lookup finds the annotation for a feature field: first by probe name,
// then, when the field is numeric, by target id.
func (idx *annotationIndex) lookup(
	feature string,
) (schema.ProbeAnnotation, bool) {
	if rec, ok := idx.byName[feature]; ok {
		return rec, true
	}
	if target, err := strconv.Atoi(feature); err == nil {
		if rec, ok := idx.byTarget[target]; ok {
			return rec, true
		}
	}
	return schema.ProbeAnnotation{}, false
}
