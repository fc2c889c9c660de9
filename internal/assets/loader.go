package assets

// AssetLoader defines the contract for loading style presets.
type AssetLoader interface {
	// LoadStyle returns the YAML of the preset name (without extension).
	// Returns ErrStyleNotFound if the preset doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) ([]byte, error)

	// ListStyles returns the available preset names, sorted.
	ListStyles() ([]string, error)
}

// styleExtensions are tried in order when looking a preset up.
var styleExtensions = []string{".yaml", ".yml"}
