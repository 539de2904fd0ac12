package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newDomainCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "domain [NAME [VALUE]]",
		Short: "List domains, show a domain's members or resolve a value",
		Long: `Without arguments, domain lists the catalog's domains. With a name it prints
the domain's members. With a name and a value it resolves the value by code,
description or name and prints the matching member.`,
		Args: cobra.MaximumNArgs(2),
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

			out := cmd.OutOrStdout()
			switch len(args) {
			case 0:
				for _, name := range app.Service.DomainNames() {
					fmt.Fprintln(out, name)
				}
				return nil

			case 1:
				d, err := app.Service.Domain(args[0])
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				defer tw.Flush()
				fmt.Fprintln(tw, "CODE\tNAME\tDESCRIPTION")
				for _, m := range d.Members() {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Code, m.Name, m.Description)
				}
				return nil

			default:
				m, ok, err := app.Service.Resolve(args[0], args[1])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%q is not a member of %s", args[1], args[0])
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", m.Code, m.Name, m.Description)
				return nil
			}
		},
	}
}
