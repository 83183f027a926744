// Package config holds the builder settings and the layered application
// configuration.
package config

// Settings controls tree construction.
type Settings struct {
	// ExcludeHidden skips entries whose base name starts with a dot.
	ExcludeHidden bool
	// MaxDepth limits traversal depth; nil means unlimited. The root is at
	// depth zero.
	MaxDepth *int
	// IncludeFiles controls whether file entries appear in the tree.
	// Directories are traversed either way.
	IncludeFiles bool
}

// DefaultSettings returns the builder defaults: hidden entries excluded,
// unlimited depth, files included.
func DefaultSettings() Settings {
	return Settings{
		ExcludeHidden: true,
		IncludeFiles:  true,
	}
}
