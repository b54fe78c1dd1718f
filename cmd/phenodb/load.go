/*
Copyright © 2025 PhenoDB authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package main

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/phenodb/phenodb/internal/iodb"
	"github.com/phenodb/phenodb/internal/ioload"
	"github.com/phenodb/phenodb/pkg/config"
	"github.com/phenodb/phenodb/pkg/errcode"
	"github.com/phenodb/phenodb/pkg/phenodb"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command. Extracted as a function to
// facilitate testing and dynamic command registration.
func getLoadCmd() *cobra.Command {
	var (
		speciesID          int
		platformID         int
		datasetID          int
		standardErrors     bool
		requireAnnotations bool
	)

	loadCmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load a measurement matrix into the database",
		Long: `Validate and load one tab-separated measurement matrix.

The file's first line is a header: a feature-id column (e.g. ProbeSetID)
followed by strain columns. Known shorthand aliases (B6, D2) are
translated to canonical strain names. Every strain column must exist in
the strains table for the given species, or the whole run is rejected.

Data rows are streamed once: the feature id is coerced to an integer,
every cell to a number, and one data point per (row, strain) pair is
inserted into probe_data (means) or probe_se (standard errors) in a
single transaction. A failed run leaves the database unchanged.

Examples:
  # Load means
  phenodb load means.tsv --species-id 1 --platform-id 2 --dataset-id 7

  # Load standard errors for the same dataset
  phenodb load se.tsv --se --species-id 1 --platform-id 2 --dataset-id 7

  # Reject probes that have no annotation record
  phenodb load means.tsv -s 1 -p 2 -d 7 --require-annotations`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(
				cmd, args[0], standardErrors, speciesID,
				platformID, datasetID, requireAnnotations,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	loadCmd.Flags().IntVarP(
		&speciesID, "species-id", "s", 0,
		"species that scopes strain lookups (required)",
	)
	loadCmd.Flags().IntVarP(
		&platformID, "platform-id", "p", 0,
		"platform that scopes annotation lookups (required)",
	)
	loadCmd.Flags().IntVarP(
		&datasetID, "dataset-id", "d", 0,
		"dataset that scopes annotation lookups (required)",
	)
	loadCmd.Flags().BoolVar(
		&standardErrors, "se", false,
		"load standard errors instead of means",
	)
	loadCmd.Flags().BoolVar(
		&requireAnnotations, "require-annotations", false,
		"reject features with no annotation record",
	)
	loadCmd.MarkFlagRequired("species-id")
	loadCmd.MarkFlagRequired("platform-id")
	loadCmd.MarkFlagRequired("dataset-id")

	return loadCmd
}

func runLoad(
	cmd *cobra.Command,
	filePath string,
	standardErrors bool,
	speciesID, platformID, datasetID int,
	requireAnnotations bool,
) error {
	ctx := context.Background()

	loadOpts := []config.Option{
		config.OptLoadSpeciesID(speciesID),
		config.OptLoadPlatformID(platformID),
		config.OptLoadDatasetID(datasetID),
	}
	if cmd.Flags().Changed("require-annotations") {
		loadOpts = append(
			loadOpts,
			config.OptLoadRequireAnnotations(&requireAnnotations),
		)
	}
	cfg.Update(loadOpts)

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}
	if !hasTables {
		return &gn.Error{
			Code: errcode.DBEmptyDatabaseError,
			Msg: `<err>Database appears to be empty.</err>
   Run <em>'phenodb create'</em> first to initialize the schema.`,
			Err: errors.New("cannot load data into empty database"),
		}
	}

	mode := phenodb.ModeMeans
	if standardErrors {
		mode = phenodb.ModeStandardErrors
	}

	loader := ioload.New(cfg, iodb.NewStore(op))

	params := phenodb.RunParams{
		FilePath:           filePath,
		Mode:               mode,
		SpeciesID:          cfg.Load.SpeciesID,
		PlatformID:         cfg.Load.PlatformID,
		DatasetID:          cfg.Load.DatasetID,
		RequireAnnotations: cfg.Load.RequireAnnotations,
	}

	summary, err := loader.Load(ctx, params)
	if err != nil {
		return err
	}

	gn.Info(`Load complete
Rows read: <em>%s</em>
Data points inserted into %s: <em>%s</em>
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(summary.RowsRead)),
		mode.Table(),
		humanize.Comma(int64(summary.PointsInserted)),
		gnfmt.TimeString(summary.Elapsed.Seconds()),
	)

	if summary.PointsInserted > 0 {
		gn.Message("<em>Assigned ids %d through %d</em>",
			summary.FirstID, summary.LastID)
	}

	return nil
}
