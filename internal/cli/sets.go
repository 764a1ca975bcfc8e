package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vvka-141/iconprune/internal/iconset"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the icon set prefixes and their folders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PREFIX\tFOLDER")
		for _, s := range iconset.Builtin().Sets() {
			fmt.Fprintf(w, "%s\t%s\n", s.Prefix, s.Folder)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(setsCmd)
}
