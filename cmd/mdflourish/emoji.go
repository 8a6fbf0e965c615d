package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/mdflourish/emoji"
)

func newEmojiCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "emoji [QUERY]",
		Short: "Search the emoji catalog",
		Long:  "Search emoji by name or keyword. Without a query, list the categories.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := emoji.Default()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			query := strings.Join(args, " ")
			if strings.TrimSpace(query) == "" {
				for _, c := range cat.Categories() {
					fmt.Fprintf(out, "%s (%d)\n", c.Name, len(c.Emojis))
				}
				return nil
			}

			found := cat.Find(query, limit)
			if len(found) == 0 {
				return fmt.Errorf("no emoji matches %q", query)
			}
			for _, e := range found {
				fmt.Fprintf(out, "%s  %s\n", e.Char, e.Name)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum results")
	return cmd
}
