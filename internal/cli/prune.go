package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/iconprune/internal/config"
	"github.com/vvka-141/iconprune/internal/files/filesystem"
	"github.com/vvka-141/iconprune/internal/logging"
	"github.com/vvka-141/iconprune/internal/services"
	"github.com/vvka-141/iconprune/internal/tui"
	"github.com/vvka-141/iconprune/internal/ui"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

var pruneCmd = &cobra.Command{
	Use:   "prune [plugin_dir]",
	Short: "Delete icon files the manifest does not reference",
	Long: `Prune compares the icon library with the manifest and deletes unreferenced icons.

The prune command:
1. Reads <plugin_dir>/data.json and drops its "settings" entry
2. Maps every remaining icon reference to <plugin_dir>/icons/<set>/<Name>.svg
3. Lists every .svg file under <plugin_dir>/icons
4. Warns if some referenced icons are missing on disk
5. Asks "Delete N files (keep M)? (y/N)" and deletes only on y/ye/yes

Arguments:
  plugin_dir    Directory holding data.json and icons/ (default: current directory)

Environment:
  ICONPRUNE_MANIFEST   Manifest path used when --manifest is not given
  ICONPRUNE_ICONS      Icons directory used when --icons is not given

Examples:
  # Clean the plugin in the current directory
  iconprune prune

  # Clean a vault's plugin
  iconprune prune ~/vault/.obsidian/plugins/obsidian-icon-folder

  # Show which files would go, then answer "n"
  iconprune prune -v`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completePluginDir,
	RunE:              runPrune,
}

type pruneFlagValues struct {
	manifest string
	icons    string
	force    bool
}

var pruneFlags pruneFlagValues

// newApprover builds the confirmation gate; replaced in tests.
var newApprover = func(force bool, palette tui.Palette) iconprune.Approver {
	if force {
		return ui.NewForcedApprover(palette)
	}
	return ui.NewInteractiveApprover(palette)
}

func init() {
	rootCmd.AddCommand(pruneCmd)

	pruneCmd.Flags().StringVar(&pruneFlags.manifest, "manifest", "",
		"Manifest file\n"+
			"Precedence: --manifest > $ICONPRUNE_MANIFEST > <plugin_dir>/data.json")
	pruneCmd.Flags().StringVar(&pruneFlags.icons, "icons", "",
		"Icons directory\n"+
			"Precedence: --icons > $ICONPRUNE_ICONS > <plugin_dir>/icons")
	pruneCmd.Flags().BoolVar(&pruneFlags.force, "force", false,
		"Skip the y/N prompt and delete after a short countdown")

	_ = pruneCmd.RegisterFlagCompletionFunc("manifest", completeManifestFile)
	_ = pruneCmd.RegisterFlagCompletionFunc("icons", completeIconsDir)
}

func runPrune(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	opts := config.Options{
		ManifestPath: pruneFlags.manifest,
		IconsRoot:    pruneFlags.icons,
	}
	if len(args) == 1 {
		opts.PluginDir = args[0]
	}
	cfg, err := config.Resolve(opts, os.Getenv)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	logger.Verbose("Manifest: %s", cfg.ManifestPath)
	logger.Verbose("Icons: %s", cfg.IconsRoot)

	palette := tui.PaletteFor(tui.DetectMode())
	svc := services.NewPruneService(
		filesystem.NewOSFileSystem(),
		newApprover(pruneFlags.force, palette),
		logger,
		cmd.OutOrStdout(),
		palette,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := svc.Prune(ctx, cfg); err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}
	return nil
}
