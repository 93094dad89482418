package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tablecolumnresize/pkg/columnresize"
)

var normalizeCommand = &cobra.Command{
	Use:   "normalize <width>...",
	Short: "Normalize a list of column widths",
	Long: `Normalize column widths so they sum to 100%.

Widths are percentages ("25%", "25") or "auto". Arguments may also be a
single comma separated list as stored in a table's columnWidths attribute.`,
	Example: `  colresize normalize 40% auto auto auto
  colresize normalize 25%,25%,25%`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no widths specified")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return normalize(args, cmd.OutOrStdout())
	},
}

func normalize(args []string, stdout io.Writer) error {
	widths := columnresize.ParseColumnWidths(strings.Join(args, ","))
	_, err := fmt.Fprintln(stdout, columnresize.FormatColumnWidths(columnresize.NormalizeColumnWidths(widths)))
	return err
}
