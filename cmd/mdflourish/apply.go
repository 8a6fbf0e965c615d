package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/mdflourish/emoji"
	"github.com/iw2rmb/mdflourish/format"
)

func newApplyCmd() *cobra.Command {
	var (
		offset, end int
		emojiArg    string
		write       bool
	)
	cmd := &cobra.Command{
		Use:   "apply COMMAND FILE",
		Short: "Apply a formatting command and print the result",
		Long: `Apply a formatting command (bold, italic, h1, list, link, table, ...) to the
selection [--offset, --end) and print the new text. The emoji command inserts
--emoji, given as a character or a catalog name, at --offset.

Offsets count runes of FILE as stored; the text is not normalised, so line
endings and combining marks are kept. With --write only the edited region of
FILE changes. The new selection is reported on standard error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := format.ParseCommand(args[0])
			if err != nil {
				return fmt.Errorf("%w (one of: %s)", err, commandNames())
			}
			path := args[1]
			if write && path == stdinArg {
				return errors.New("--write needs a file, not standard input")
			}
			doc, err := readSource(cmd, path)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("end") {
				end = offset
			}

			var (
				text string
				next format.Selection
			)
			if c.IsRequest() {
				if emojiArg == "" {
					return fmt.Errorf("%s needs --emoji", c)
				}
				ch, err := resolveEmoji(emojiArg)
				if err != nil {
					return err
				}
				var pos int
				text, pos = format.InsertAt(doc.Text, offset, ch)
				next = format.Caret(pos)
			} else {
				text, next = format.Apply(c, doc.Text, format.Selection{Start: offset, End: end})
			}
			slog.Debug("applied", "command", c.String(), "start", next.Start, "end", next.End)

			if write {
				if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
			} else if _, err := fmt.Fprint(cmd.OutOrStdout(), text); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "selection %d %d\n", next.Start, next.End)
			return err
		},
	}
	selectionFlags(cmd, &offset, &end)
	cmd.Flags().StringVar(&emojiArg, "emoji", "", "emoji to insert with the emoji command")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	return cmd
}

// resolveEmoji accepts a catalog name ("party popper") or a literal emoji.
func resolveEmoji(arg string) (string, error) {
	cat, err := emoji.Default()
	if err != nil {
		return "", err
	}
	if e, ok := cat.Lookup(arg); ok {
		return e.Char, nil
	}
	return arg, nil
}

func commandNames() string {
	var out string
	for i, c := range format.Commands() {
		if i > 0 {
			out += ", "
		}
		out += c.String()
	}
	return out
}
