package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	toml "github.com/pelletier/go-toml/v2"
)

// Manifest is an explicit listing of available assets, read from TOML:
//
//	[[image]]
//	path = "assets/2024/2/day5.jpg"
//
//	[[image]]
//	path = "assets/2024/2/day5b.jpg"
type Manifest struct {
	Images []ManifestEntry `toml:"image"`

	index map[string]bool
}

// ManifestEntry is one listed asset.
type ManifestEntry struct {
	Path string `toml:"path"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(file string) (*Manifest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest parses manifest TOML and rejects entries that are not day
// asset paths.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	m.index = make(map[string]bool, len(m.Images))
	for _, e := range m.Images {
		p := path.Clean(e.Path)
		if !IsAssetPath(p) {
			return nil, fmt.Errorf("manifest entry %q is not an asset path", e.Path)
		}
		m.index[p] = true
	}
	return &m, nil
}

// Has reports whether p is listed.
func (m *Manifest) Has(p string) bool {
	return m.index[path.Clean(p)]
}

// ManifestSource answers existence from a Manifest and loads listed
// entries from Next. Unlisted paths never reach Next.
type ManifestSource struct {
	Manifest *Manifest
	Next     Source
}

// Open returns ErrNotFound for unlisted paths.
func (s ManifestSource) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	if !s.Manifest.Has(p) {
		return nil, fmt.Errorf("%w: %s (not in manifest)", ErrNotFound, p)
	}
	return s.Next.Open(ctx, p)
}
