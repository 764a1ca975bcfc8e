// Package config resolves where the manifest and icon library live.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/iconprune/internal/iconset"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

// Environment variables consulted when the corresponding flag is not set.
const (
	EnvManifest = "ICONPRUNE_MANIFEST"
	EnvIcons    = "ICONPRUNE_ICONS"
)

// Options are the raw, possibly empty, values collected from the command line.
type Options struct {
	PluginDir    string
	ManifestPath string
	IconsRoot    string
}

// Config is the resolved configuration of one run. It is passed by value and
// never modified after Resolve.
type Config struct {
	ManifestPath string
	IconsRoot    string
	Sets         iconset.Table
}

// Resolve applies precedence flag > environment > default. Defaults live in
// PluginDir, or the working directory when PluginDir is empty. Paths come back
// absolute and cleaned so they compare equal to the paths found by scanning.
func Resolve(opts Options, getenv func(string) string) (Config, error) {
	pluginDir := opts.PluginDir
	if pluginDir == "" {
		pluginDir = "."
	}

	manifestPath := firstNonEmpty(opts.ManifestPath, getenv(EnvManifest), filepath.Join(pluginDir, iconprune.ManifestFileName))
	iconsRoot := firstNonEmpty(opts.IconsRoot, getenv(EnvIcons), filepath.Join(pluginDir, iconprune.IconsDirName))

	var err error
	if manifestPath, err = filepath.Abs(manifestPath); err != nil {
		return Config{}, fmt.Errorf("%w: manifest path: %v", iconprune.ErrInvalidConfig, err)
	}
	if iconsRoot, err = filepath.Abs(iconsRoot); err != nil {
		return Config{}, fmt.Errorf("%w: icons directory: %v", iconprune.ErrInvalidConfig, err)
	}
	if manifestPath == iconsRoot {
		return Config{}, fmt.Errorf("%w: manifest and icons directory are the same path %s", iconprune.ErrInvalidConfig, manifestPath)
	}

	return Config{
		ManifestPath: manifestPath,
		IconsRoot:    iconsRoot,
		Sets:         iconset.Builtin(),
	}, nil
}

// ManifestName returns the manifest's file name, used in operator messages.
func (c Config) ManifestName() string {
	return filepath.Base(c.ManifestPath)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
