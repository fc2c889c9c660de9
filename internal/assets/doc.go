// Package assets provides named style presets for rendering.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in presets)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in presets (tmux, dark, light) embedded
// at compile time.
//
// FilesystemLoader lets users keep their own presets in a directory, with
// path traversal protection and symlink resolution.
//
// AssetResolver is the loader the CLI uses. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the preset
// is not found there, so a user preset can shadow a built-in one.
//
// # Directory Structure
//
// A preset directory holds one YAML file per preset:
//
//	{basePath}/
//	├── {name}.yaml
//	└── {name}.yml
//
// Preset files use the same keys as config files, without "preset".
//
// # Security
//
// Preset names are restricted to letters, digits, '-' and '_'.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
