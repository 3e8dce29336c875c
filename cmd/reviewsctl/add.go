package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"reviewhub/internal/domain/reviews"
)

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <content>",
		Short:   "Post a new review",
		Example: `  reviewsctl add "Quick delivery, would order again"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := reviews.CreateReviewPayload{
				Content: strings.TrimSpace(strings.Join(args, " ")),
			}
			if err := validate.Struct(payload); err != nil {
				return fmt.Errorf("invalid review: %w", err)
			}

			created, err := c.storage.Reviews.AddReview(cmd.Context(), payload.Content)
			if err != nil {
				return fmt.Errorf("add review: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, pterm.Success.Sprintln(fmt.Sprintf("review %d posted", created.ID)))
			if !created.Published() {
				fmt.Fprint(out, pterm.Info.Sprintln("awaiting moderation"))
			}
			return nil
		},
	}
}
