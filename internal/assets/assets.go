package assets

// DefaultStyleName is the preset applied when none is requested.
const DefaultStyleName = "tmux"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in preset by name.
// The name should not include the extension or path components.
// Returns ErrStyleNotFound if the preset does not exist.
// Returns ErrInvalidAssetName if the name contains disallowed characters.
func LoadStyle(name string) ([]byte, error) {
	return defaultLoader.LoadStyle(name)
}

// ListStyles returns the built-in preset names.
func ListStyles() ([]string, error) {
	return defaultLoader.ListStyles()
}
