package services

import (
	"context"
	"fmt"
	"io"

	"github.com/vvka-141/iconprune/internal/config"
	"github.com/vvka-141/iconprune/internal/files/filesystem"
	"github.com/vvka-141/iconprune/internal/files/scanner"
	"github.com/vvka-141/iconprune/internal/manifest"
	"github.com/vvka-141/iconprune/internal/reconcile"
	"github.com/vvka-141/iconprune/internal/tui"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

// PruneService runs one cleanup: load the manifest, resolve expected icon paths,
// then reconcile them against the icon library.
// Not safe for concurrent Prune() calls on the same library.
type PruneService struct {
	fs       filesystem.FileSystemProvider
	approver iconprune.Approver
	logger   iconprune.Logger
	out      io.Writer
	palette  tui.Palette
}

// NewPruneService creates a PruneService with all dependencies injected.
// Panics on nil dependencies.
func NewPruneService(
	fs filesystem.FileSystemProvider,
	approver iconprune.Approver,
	logger iconprune.Logger,
	out io.Writer,
	palette tui.Palette,
) *PruneService {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}

	return &PruneService{
		fs:       fs,
		approver: approver,
		logger:   logger,
		out:      out,
		palette:  palette,
	}
}

// Prune executes the cleanup described by cfg. Manifest and resolution errors
// abort before the icon library is scanned.
func (s *PruneService) Prune(ctx context.Context, cfg config.Config) (iconprune.Result, error) {
	expected, err := s.ExpectedIcons(cfg)
	if err != nil {
		return iconprune.Result{}, err
	}

	rec := reconcile.New(reconcile.Options{
		Scanner:      scanner.NewScannerWithFS(s.fs),
		FS:           s.fs,
		Approver:     s.approver,
		Logger:       s.logger,
		Out:          s.out,
		Palette:      s.palette,
		ManifestName: cfg.ManifestName(),
	})
	return rec.Run(ctx, expected, cfg.IconsRoot)
}

// ExpectedIcons loads the manifest and resolves every reference it holds.
func (s *PruneService) ExpectedIcons(cfg config.Config) (iconprune.ExpectedSet, error) {
	m, err := manifest.Load(s.fs, cfg.ManifestPath)
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Loaded %d icon entries (%d unique) from %s", m.Entries, len(m.References), cfg.ManifestPath)

	resolver := manifest.NewResolver(cfg.Sets, cfg.IconsRoot)
	expected, err := resolver.Resolve(m.References)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve icon references: %w", err)
	}
	s.logger.Verbose("Resolved %d expected icon files", expected.Len())
	return expected, nil
}
