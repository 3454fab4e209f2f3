package receipt

import (
	"fmt"
	"os"
)

// Write stores a fully materialised body at path in a single call. Nothing is
// streamed, so a failed run never leaves a partial receipt behind.
func Write(path, body string) error {
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write result %s: %w", path, err)
	}
	return nil
}
