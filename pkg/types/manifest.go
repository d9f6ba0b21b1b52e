package types

import "path/filepath"

// ManifestFileName is the name of the manifest at the root of a settings directory
const ManifestFileName = "manifest.toml"

// ManifestItem is a single link directive
type ManifestItem struct {
	// Source is relative to the settings directory
	Source string
	// Destination is relative to the base (home) directory
	Destination string
	// Force replaces an existing destination before linking
	Force bool
}

// Manifest is the ordered list of link directives read from manifest.toml.
// Duplicates are allowed and processed independently in order.
type Manifest struct {
	Items []ManifestItem
}

// Len returns the number of items in the manifest
func (m Manifest) Len() int {
	return len(m.Items)
}

// Location is a settings directory that passed preflight along with the
// raw manifest text found in it.
type Location struct {
	// SettingsDir is absolute
	SettingsDir     string
	ManifestContent string
}

// ManifestPath returns the absolute path of the manifest file
func (l Location) ManifestPath() string {
	return filepath.Join(l.SettingsDir, ManifestFileName)
}
