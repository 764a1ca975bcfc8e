package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/iconprune/internal/iconset"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

// Resolver maps icon references to the paths their files must have.
// It does no I/O.
type Resolver struct {
	table     iconset.Table
	iconsRoot string
}

// NewResolver creates a resolver placing icons under iconsRoot.
func NewResolver(table iconset.Table, iconsRoot string) *Resolver {
	return &Resolver{table: table, iconsRoot: iconsRoot}
}

// ResolveOne returns <iconsRoot>/<folder>/<BaseName>.svg for ref.
func (r *Resolver) ResolveOne(ref string) (string, error) {
	prefix, baseName, ok := SplitReference(ref)
	if !ok {
		return "", fmt.Errorf("%w: empty icon reference", iconprune.ErrMalformedManifest)
	}

	folder, err := r.table.Folder(prefix)
	if err != nil {
		return "", fmt.Errorf("icon reference %q: %w", ref, err)
	}

	return filepath.Join(r.iconsRoot, folder, baseName+iconprune.IconExtension), nil
}

// Resolve maps every reference and returns the resulting set. The first failure
// aborts resolution and no set is returned.
func (r *Resolver) Resolve(refs []string) (iconprune.ExpectedSet, error) {
	expected := make(iconprune.ExpectedSet, len(refs))
	for _, ref := range refs {
		p, err := r.ResolveOne(ref)
		if err != nil {
			return nil, err
		}
		expected.Add(p)
	}
	return expected, nil
}
