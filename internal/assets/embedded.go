package assets

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed styles/*.yaml
var styles embed.FS

// EmbeddedLoader loads the built-in presets.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a preset from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	for _, ext := range styleExtensions {
		if content, err := styles.ReadFile(path.Join("styles", name+ext)); err == nil {
			return content, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
}

// ListStyles returns the embedded preset names.
func (e *EmbeddedLoader) ListStyles() ([]string, error) {
	entries, err := styles.ReadDir("styles")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return styleNames(entryNames(entries)), nil
}

type named interface{ Name() string }

func entryNames[E named](entries []E) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

// styleNames keeps the preset files among names, strips their extension,
// and returns them sorted without duplicates.
func styleNames(files []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range files {
		for _, ext := range styleExtensions {
			name, ok := strings.CutSuffix(f, ext)
			if !ok || seen[name] || ValidateAssetName(name) != nil {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
