package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/geoanla/internal/core"
)

type validateFlags struct {
	schema       string
	file         string
	format       string
	offset       int
	encoding     string
	delimiter    string
	elevation    bool
	asJSON       bool
	failOnErrors bool
}

func newValidateCmd(global *globalFlags) *cobra.Command {
	f := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a CSV or GeoJSON file against a record type",
		Long: `Validate reads every row of a file and reports the rows that violate the
record type. Row numbers start at 0 and are shifted by --offset.

The exit status is 1 when the file cannot be validated at all, and 2 when
rows were rejected and --fail-on-errors is set.`,
		Example: `  geoanla validate --schema PuntoMuestreoFlora --file muestras.csv
  geoanla validate --schema PuntoMuestreoFlora --file parte2.csv --offset 5000 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, global, f)
		},
	}

	cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "Record type key (see 'geoanla schemas')")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Input file, or - for stdin")
	cmd.Flags().StringVar(&f.format, "format", "", "csv or geojson (default: from the file extension)")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "Added to row numbers in error reports")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "CSV character encoding (default: utf-8)")
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", "CSV delimiter (default: sniffed)")
	cmd.Flags().BoolVar(&f.elevation, "elevation", false, "Fill COTA from the elevation service")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the full result as JSON")
	cmd.Flags().BoolVar(&f.failOnErrors, "fail-on-errors", false, "Exit with status 2 when rows are rejected")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runValidate(cmd *cobra.Command, global *globalFlags, f *validateFlags) error {
	if f.offset < 0 {
		return fmt.Errorf("--offset must not be negative")
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, _, err := loadApp(ctx, cmd, global)
	if err != nil {
		return err
	}
	defer app.Close()

	sc, err := app.Service.Schema(f.schema)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, f.file)
	if err != nil {
		return err
	}
	defer closeIn()

	src, err := openSource(in, f)
	if err != nil {
		return err
	}

	if f.elevation {
		if app.Elevation == nil {
			return fmt.Errorf("elevation service not configured (ELEVATION_URL)")
		}
		if src, _, err = app.Elevation.AugmentSource(ctx, sc, src); err != nil {
			return err
		}
	}

	res, err := app.Service.Validate(ctx, f.schema, src, f.offset)
	if err != nil {
		return fmt.Errorf("%s: %w", core.FormatUserError(err), err)
	}

	out := cmd.OutOrStdout()
	if f.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printResult(out, res)
	}

	if f.failOnErrors && !res.Valid() {
		return errRejected
	}
	return nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}

func openSource(in io.Reader, f *validateFlags) (core.RowReader, error) {
	format := strings.ToLower(f.format)
	if format == "" {
		switch strings.ToLower(filepath.Ext(f.file)) {
		case ".geojson", ".json":
			format = "geojson"
		default:
			format = "csv"
		}
	}

	switch format {
	case "geojson", "json":
		return core.NewGeoJSONReader(in)
	case "csv":
		opts := core.CSVOptions{Encoding: f.encoding}
		if f.delimiter != "" {
			d := f.delimiter
			if d == `\t` || strings.EqualFold(d, "tab") {
				d = "\t"
			}
			if utf8.RuneCountInString(d) != 1 {
				return nil, fmt.Errorf("--delimiter must be a single character")
			}
			opts.Comma, _ = utf8.DecodeRuneInString(d)
		}
		return core.NewCSVReader(in, opts)
	default:
		return nil, fmt.Errorf("%w: format %q", core.ErrUnsupportedSource, f.format)
	}
}

func printResult(w io.Writer, res *core.Result) {
	fmt.Fprintln(w, res.Summary())
	for _, report := range res.Errors {
		fmt.Fprintf(w, "  row %d (%s): %s\n", report.Row, report.Identifier, report.Message())
	}
}
