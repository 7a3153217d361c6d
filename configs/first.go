package configs

import (
	"errors"
	"fmt"
)

// First decodes path from the first file that defines it.
// A path no file defines yields the zero value.
func First[T any](loader Loader, path string) (value T, err error) {
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, nil
		}
		return value, fmt.Errorf("config %s: %w", path, err)
	}
	return value, nil
}
