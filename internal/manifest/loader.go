package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vvka-141/iconprune/internal/files/filesystem"
	"github.com/vvka-141/iconprune/pkg/iconprune"
)

// Manifest is the decoded plugin manifest.
type Manifest struct {
	// References holds every distinct icon reference, sorted.
	References []string

	// Settings is the raw reserved entry. Its content is not interpreted.
	Settings json.RawMessage

	// Entries counts the icon entries before deduplication.
	Entries int
}

// Load reads and parses the manifest at path.
func Load(fs filesystem.FileSystemProvider, path string) (*Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", iconprune.ErrMalformedManifest, path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes manifest content. The document must be a JSON object holding the
// reserved settings key; every other value must be an icon reference string.
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", iconprune.ErrMalformedManifest, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: manifest is not an object", iconprune.ErrMalformedManifest)
	}

	settings, ok := raw[iconprune.ReservedManifestKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q entry", iconprune.ErrMalformedManifest, iconprune.ReservedManifestKey)
	}
	delete(raw, iconprune.ReservedManifestKey)

	unique := make(map[string]struct{}, len(raw))
	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return nil, fmt.Errorf("%w: entry %q is null", iconprune.ErrMalformedManifest, key)
		}
		var ref string
		if err := json.Unmarshal(value, &ref); err != nil {
			return nil, fmt.Errorf("%w: entry %q is not an icon reference string", iconprune.ErrMalformedManifest, key)
		}
		unique[ref] = struct{}{}
	}

	refs := make([]string, 0, len(unique))
	for ref := range unique {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	return &Manifest{
		References: refs,
		Settings:   settings,
		Entries:    len(raw),
	}, nil
}
