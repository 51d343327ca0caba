package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could escape the asset
// directories (path separators, traversal, null bytes) or that are
// empty.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q contains path separator or null byte", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains path traversal", ErrInvalidAssetName, name)
	}
	return nil
}
