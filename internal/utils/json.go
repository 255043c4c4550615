package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	jsonFileMode = 0o600
	jsonDirMode  = 0o755
)

// SaveJSON writes data as indented JSON, creating the parent directory if needed
func SaveJSON(path string, data interface{}) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), jsonDirMode); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(bytes, '\n'), jsonFileMode); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
