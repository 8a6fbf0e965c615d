package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/mdflourish/internal/config"
	"github.com/iw2rmb/mdflourish/theme"
)

func newThemesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Long:  "List every theme. The configured theme is marked with *.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(g.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, th := range theme.All() {
				mark := " "
				if th.ID == cfg.Theme {
					mark = "*"
				}
				kind := "light"
				if th.Dark {
					kind = "dark"
				}
				fmt.Fprintf(w, "%s %s\t%s\t%s\n", mark, th.ID, th.Name, kind)
			}
			return w.Flush()
		},
	}
}
