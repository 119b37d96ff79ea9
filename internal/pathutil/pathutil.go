// Package pathutil provides shared path validation helpers.
package pathutil

import (
	"fmt"
	"strings"
)

// ValidateFilePath checks that a configured file path is usable before any
// I/O is attempted. Returns an error if the path is empty or contains null
// bytes. Relative paths, including parent references, are legitimate for a
// local tool and are not rejected.
func ValidateFilePath(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	if strings.Contains(filePath, "\x00") {
		return fmt.Errorf("file path contains invalid characters")
	}
	return nil
}
