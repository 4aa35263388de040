package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/phrazzld/slidegen/internal/domain"
	"github.com/spf13/cobra"
)

func newFormatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the content formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tDESCRIPTION")
			for _, f := range domain.Formats() {
				fmt.Fprintf(tw, "%s\t%s %s\t%s\n", f.ID, f.Emoji, f.Title, f.Description)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", domain.FormatCustom, domain.CustomFormatTitle, "your own structure, set with --custom-format")
			return tw.Flush()
		},
	}
}
