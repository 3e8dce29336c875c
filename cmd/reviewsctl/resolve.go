package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func (c *cli) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Show which view a path renders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.router.Resolve(args[0])
			if err != nil {
				return err
			}

			redirects := "-"
			if len(res.Redirects) > 0 {
				redirects = strings.Join(res.Redirects, " -> ")
			}

			table, err := pterm.DefaultTable.WithData([][]string{
				{"Path", c.router.Href(res.Path)},
				{"View", res.Name},
				{"Redirects", redirects},
			}).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
