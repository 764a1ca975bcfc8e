package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iconprune",
	Short: "Remove icon files no note references",
	Long: `iconprune reads the icon plugin manifest (data.json), works out which icon
files the referenced icons live in, and deletes every other .svg file from the
plugin's icons directory after you confirm.

Exit Codes:
  0  - Success (whether or not anything was deleted)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Malformed manifest
  12 - Unknown icon set prefix in the manifest
  13 - Deleting an icon file failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value.
// cmd.Flag also searches parent persistent flags, so this works before flag parsing.
func getVerboseFlag(cmd *cobra.Command) bool {
	flag := cmd.Flag("verbose")
	if flag == nil {
		fmt.Fprintln(os.Stderr, "Warning: verbose flag is not defined")
		return false
	}
	verbose, err := strconv.ParseBool(flag.Value.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
