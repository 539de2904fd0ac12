package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/geoanla/internal/core"
)

func newQueryCmd(global *globalFlags) *cobra.Command {
	var (
		schema       string
		sql          string
		offset       int
		asJSON       bool
		failOnErrors bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Validate the rows of a SQL query",
		Long: `Query validates the rows returned by a PostgreSQL query against a record
type. The connection comes from DATABASE_URL. Geometries must be selected
as WKT, for example ST_AsText(geom) AS "SHAPE".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			app, _, err := loadApp(ctx, cmd, global)
			if err != nil {
				return err
			}
			defer app.Close()

			res, err := app.Service.ValidateQuery(ctx, schema, sql, offset)
			if err != nil {
				return fmt.Errorf("%s: %w", core.FormatUserError(err), err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else {
				printResult(cmd.OutOrStdout(), res)
			}

			if failOnErrors && !res.Valid() {
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "Record type key")
	cmd.Flags().StringVar(&sql, "sql", "", "SELECT statement")
	cmd.Flags().IntVar(&offset, "offset", 0, "Added to row numbers in error reports")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	cmd.Flags().BoolVar(&failOnErrors, "fail-on-errors", false, "Exit with status 2 when rows are rejected")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("sql")

	return cmd
}
