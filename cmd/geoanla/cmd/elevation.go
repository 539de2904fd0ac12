package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
)

func newElevationCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "elevation LON,LAT [LON,LAT...]",
		Short:   "Look up the elevation of points",
		Example: `  geoanla elevation -- -75.57,6.25 -76.53,3.45`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points := make([]orb.Point, len(args))
			for i, arg := range args {
				p, err := parsePoint(arg)
				if err != nil {
					return err
				}
				points[i] = p
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
			if app.Elevation == nil {
				return fmt.Errorf("elevation service not configured (ELEVATION_URL)")
			}

			elevations, err := app.Elevation.Lookup(ctx, points)
			if err != nil {
				return err
			}
			for i, e := range elevations {
				value := "-"
				if e != nil {
					value = strconv.FormatFloat(*e, 'f', -1, 64)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", args[i], value)
			}
			return nil
		},
	}
}

func parsePoint(s string) (orb.Point, error) {
	lonText, latText, ok := strings.Cut(s, ",")
	if !ok {
		return orb.Point{}, fmt.Errorf("point %q: expected LON,LAT", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonText), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return orb.Point{}, fmt.Errorf("point %q: out of range", s)
	}
	return orb.Point{lon, lat}, nil
}
