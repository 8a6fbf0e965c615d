package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/mdflourish/document"
)

func newExportCmd() *cobra.Command {
	var output, title, dir string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export a markdown file as standalone HTML",
		Long: `Render FILE to a standalone HTML page. Without --output the page is written
to <name>.html in --dir, where <name> is the lower-cased file name with every
character outside a-z and 0-9 replaced by _. Use --output - for standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			if title == "" {
				title = doc.Name
			}

			switch output {
			case "":
				path, err := document.SaveHTML(dir, title, doc.Text)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			case "-":
				return document.ExportHTML(cmd.OutOrStdout(), title, doc.Text)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := document.ExportHTML(f, title, doc.Text); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "O", "", "output file, or - for standard output")
	cmd.Flags().StringVar(&title, "title", "", "page title (default: file name)")
	cmd.Flags().StringVar(&dir, "dir", "", "output directory when --output is not set")
	return cmd
}
