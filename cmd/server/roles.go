package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List interview roles and their question counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		roles, err := a.banks.Roles(ctx)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ROLE\tQUESTIONS")
		for _, role := range roles {
			qs, err := a.banks.Questions(ctx, role)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%d\n", role, len(qs))
		}
		return tw.Flush()
	},
}
