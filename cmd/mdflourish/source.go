package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/mdflourish/document"
)

// stdinArg reads the document from standard input.
const stdinArg = "-"

// readSource reads FILE, or standard input for "-", without normalisation.
func readSource(cmd *cobra.Command, path string) (document.Document, error) {
	if path != stdinArg {
		return document.OpenRaw(path)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return document.Document{}, fmt.Errorf("read stdin: %w", err)
	}
	return document.Document{Text: string(data)}, nil
}

func selectionFlags(cmd *cobra.Command, offset, end *int) {
	cmd.Flags().IntVarP(offset, "offset", "o", 0, "selection start (rune offset into FILE as stored)")
	cmd.Flags().IntVarP(end, "end", "e", 0, "selection end (rune offset, default: --offset)")
}
