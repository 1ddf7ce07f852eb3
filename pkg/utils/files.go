// Package utils holds file helpers shared by the commands.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadSource resolves relPath to an absolute path (cleaning ../ segments)
// and reads the script stored there.
func ReadSource(relPath string) (fullPath string, src string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", "", fmt.Errorf("read script: %w", err)
	}
	return fullPath, string(data), nil
}
