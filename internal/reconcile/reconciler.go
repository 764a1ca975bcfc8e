// Package reconcile compares the icon files on disk with the files the manifest
// expects and deletes the ones nothing references.
package reconcile

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/vvka-141/iconprune/internal/files/filesystem"
	"github.com/vvka-141/iconprune/internal/tui"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

// Reconciler classifies icon files and removes unreferenced ones after approval.
// Deletion is not transactional: the first failed removal stops the run and files
// removed before it stay removed.
type Reconciler struct {
	scanner  iconprune.IconScanner
	remover  filesystem.FileSystemProvider
	approver iconprune.Approver
	logger   iconprune.Logger
	out      io.Writer
	palette  tui.Palette

	manifestName string
}

// Options configures a Reconciler. Every field except Palette and ManifestName is required.
type Options struct {
	Scanner  iconprune.IconScanner
	FS       filesystem.FileSystemProvider
	Approver iconprune.Approver
	Logger   iconprune.Logger
	Out      io.Writer
	Palette  tui.Palette

	// ManifestName is the manifest file name quoted in the mismatch warning.
	ManifestName string
}

// New creates a Reconciler. Panics if a required dependency is nil.
func New(opts Options) *Reconciler {
	switch {
	case opts.Scanner == nil:
		panic("scanner cannot be nil")
	case opts.FS == nil:
		panic("filesystem cannot be nil")
	case opts.Approver == nil:
		panic("approver cannot be nil")
	case opts.Logger == nil:
		panic("logger cannot be nil")
	case opts.Out == nil:
		panic("output cannot be nil")
	}
	name := opts.ManifestName
	if name == "" {
		name = iconprune.ManifestFileName
	}
	return &Reconciler{
		scanner:      opts.Scanner,
		remover:      opts.FS,
		approver:     opts.Approver,
		logger:       opts.Logger,
		out:          opts.Out,
		palette:      opts.Palette,
		manifestName: name,
	}
}

// Plan scans iconsRoot and partitions every icon file by exact membership in
// expected. A file whose name matches but whose folder differs is removable.
func (r *Reconciler) Plan(ctx context.Context, expected iconprune.ExpectedSet, iconsRoot string) (iconprune.Plan, error) {
	if err := ctx.Err(); err != nil {
		return iconprune.Plan{}, err
	}

	icons, err := r.scanner.ScanIcons(iconsRoot)
	if err != nil {
		return iconprune.Plan{}, err
	}

	plan := iconprune.Plan{Expected: expected}
	for _, icon := range icons {
		if expected.Contains(icon) {
			plan.Kept = append(plan.Kept, icon)
		} else {
			plan.Removable = append(plan.Removable, icon)
		}
	}
	sort.Strings(plan.Kept)
	sort.Strings(plan.Removable)

	r.logger.Verbose("Scanned %d icon files under %s", plan.Total(), iconsRoot)
	return plan, nil
}

// Run plans, reports, asks for approval and deletes the removable files.
// Declining is not an error: the result has Confirmed=false and nothing is removed.
func (r *Reconciler) Run(ctx context.Context, expected iconprune.ExpectedSet, iconsRoot string) (iconprune.Result, error) {
	plan, err := r.Plan(ctx, expected, iconsRoot)
	if err != nil {
		return iconprune.Result{}, err
	}
	result := iconprune.Result{Plan: plan}

	if plan.HasMismatch() {
		fmt.Fprintln(r.out, r.palette.Warning(fmt.Sprintf(
			"Warning: `%s` assigned %d unique icons, but only %d of those have been found on the disk.",
			r.manifestName, expected.Len(), len(plan.Kept))))
		for _, missing := range plan.Missing() {
			r.logger.Verbose("Missing: %s", missing)
		}
	}
	for _, path := range plan.Removable {
		r.logger.Verbose("Unreferenced: %s", path)
	}

	approved, err := r.approver.RequestApproval(ctx, plan.Summary())
	if err != nil {
		return result, fmt.Errorf("confirmation failed: %w", err)
	}
	if !approved {
		fmt.Fprintln(r.out, r.palette.Muted("Nothing was deleted."))
		return result, nil
	}
	result.Confirmed = true

	fmt.Fprintln(r.out, "Deleting...")
	for _, path := range plan.Removable {
		if err := r.remover.Remove(path); err != nil {
			r.logger.Error("Stopped after deleting %d of %d files", result.Removed, len(plan.Removable))
			return result, fmt.Errorf("%w: %s: %v", iconprune.ErrDeletionFailed, path, err)
		}
		result.Removed++
		r.logger.Verbose("Deleted %s", path)
	}

	fmt.Fprintln(r.out, r.palette.Success(fmt.Sprintf("Deleted %d icon files.", result.Removed)))
	return result, nil
}
