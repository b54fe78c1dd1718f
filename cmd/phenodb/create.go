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

	"github.com/gnames/gn"
	"github.com/phenodb/phenodb/internal/iodb"
	"github.com/phenodb/phenodb/internal/ioschema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command. Extracted as a function to
// facilitate testing and dynamic command registration.
func getCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create the PhenoDB database schema",
		Long: `Create the PhenoDB schema in the configured PostgreSQL database.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Creates the reference tables (strains, probe_annotations)
  3. Creates the data tables (probe_data, probe_se)

Schema creation is idempotent: running it against an existing PhenoDB
database leaves data in place.

Examples:
  phenodb create`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCreate()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return createCmd
}

func runCreate() error {
	ctx := context.Background()

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
	if hasTables {
		gn.Warn("Database already has tables; existing data stays in place")
	}

	manager := ioschema.NewManager(op)

	gn.Info("Creating PhenoDB schema...")
	if err := manager.Create(ctx); err != nil {
		return err
	}

	gn.Info(`Schema is ready.
Next steps:
  - Curate reference data (strains, probe annotations)
  - Run '<em>phenodb load</em>' to import measurement matrices
`)

	return nil
}
