package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"reviewhub/internal/domain/reviews"
)

const maxContentWidth = 60

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reviews, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.storage.Reviews.LoadReviews(cmd.Context())

			snap := c.storage.Reviews.Snapshot()
			if snap.LastError != "" {
				return fmt.Errorf("load reviews: %s", snap.LastError)
			}

			out := cmd.OutOrStdout()
			if len(snap.Reviews) == 0 {
				fmt.Fprint(out, pterm.Info.Sprintln("no reviews yet"))
				return nil
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(reviewRows(snap.Reviews)).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, table)
			return nil
		},
	}
}

// reviewRows lays reviews out as table rows under a header row.
func reviewRows(list []reviews.Review) [][]string {
	rows := make([][]string, 0, len(list)+1)
	rows = append(rows, []string{"ID", "Created", "Status", "Content"})

	for _, r := range list {
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		status := "published"
		if !r.Published() {
			status = string(r.Status)
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			created,
			status,
			truncate(r.Content, maxContentWidth),
		})
	}
	return rows
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
