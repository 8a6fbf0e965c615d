package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/mdflourish/format"
)

func newStatusCmd() *cobra.Command {
	var offset, end int
	cmd := &cobra.Command{
		Use:   "status FILE",
		Short: "Print the formats active at a cursor or selection",
		Long: `Print the formatting tags active at --offset, comma separated, or "none".
FILE may be - to read standard input. Offsets count runes of FILE as stored;
the text is not normalised.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("end") {
				end = offset
			}
			sel := format.Selection{Start: offset, End: end}
			set := format.Resolve(doc.Text, sel)
			slog.Debug("resolved formats", "start", sel.Start, "end", sel.End, "formats", set.String())

			if set.IsEmpty() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "none")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), set.String())
			return err
		},
	}
	selectionFlags(cmd, &offset, &end)
	return cmd
}
