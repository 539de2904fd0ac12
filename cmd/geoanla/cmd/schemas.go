package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/geoanla/internal/core"
	_ "github.com/JonMunkholm/geoanla/internal/core/tables" // Register all record types
)

func newSchemasCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "schemas [KEY]",
		Short: "List record types, or the fields of one record type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer tw.Flush()

			if len(args) == 1 {
				sc, err := core.Lookup(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s (%s)\n", sc.Info.Key, sc.Info.Group)
				fmt.Fprintln(tw, "FIELD\tTYPE\tREQUIRED\tDOMAIN\tBOUNDS")
				for _, f := range sc.Fields {
					fmt.Fprintf(tw, "%s\t%s\t%v\t%s\t%s\n", f.Name, f.Type, f.Required, f.Domain, bounds(f))
				}
				for _, r := range sc.Rules {
					fmt.Fprintf(tw, "rule\t%s\n", r.Name)
				}
				return nil
			}

			groups := core.Groups()
			if group != "" {
				groups = []string{group}
			}
			fmt.Fprintln(tw, "GROUP\tKEY\tLABEL")
			for _, g := range groups {
				for _, sc := range core.ByGroup(g) {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", g, sc.Info.Key, sc.Info.Label)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "Only list one model group")
	return cmd
}

func bounds(f core.FieldSpec) string {
	var parts []string
	if f.MaxLen > 0 {
		parts = append(parts, fmt.Sprintf("len<=%d", f.MaxLen))
	}
	if f.Min != nil {
		parts = append(parts, fmt.Sprintf(">=%g", *f.Min))
	}
	if f.Max != nil {
		parts = append(parts, fmt.Sprintf("<=%g", *f.Max))
	}
	return strings.Join(parts, " ")
}
