package assets

import "fmt"

// MaxAssetNameLength bounds a preset name.
const MaxAssetNameLength = 64

// ValidateAssetName checks that a preset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty, too long, or contains
// anything but ASCII letters, digits, '-' and '_'. Dots are rejected so the
// extension cannot be chosen by the caller.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > MaxAssetNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidAssetName, len(name), MaxAssetNameLength)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
