package ioload

import (
	"context"

	"github.com/phenodb/phenodb/pkg/phenodb"
	"github.com/phenodb/phenodb/pkg/schema"
)

// resolveStrains fetches reference records for the strain columns of the
// header, scoped to a species, and validates completeness. The gate is
// all-or-nothing: if any header strain is unknown, the run fails with an
// error naming every missing strain, before any insertion is attempted.
func resolveStrains(
	ctx context.Context,
	store phenodb.Store,
	headings []phenodb.Heading,
	speciesID int,
) (map[string]schema.Strain, error) {
	names := headerStrains(headings)

	found, err := store.FetchStrains(ctx, names, speciesID)
	if err != nil {
		return nil, err
	}

	var missing []string
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := found[n]; !ok {
			missing = append(missing, n)
		}
	}

	if len(missing) > 0 {
		return nil, StrainNotFoundError(missing)
	}

	return found, nil
}
