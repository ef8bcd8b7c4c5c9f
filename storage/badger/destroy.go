package badger

import (
	"fmt"
	"os"
)

// Destroy irreversibly removes all persisted state at the store's
// location. No-op when the path does not exist. The database must not
// be open when this is called.
func Destroy(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspecting store path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a store directory", path)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("destroying store at %s: %w", path, err)
	}
	return nil
}
