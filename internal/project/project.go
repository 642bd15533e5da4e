package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/FloorFit/internal/engine"
)

// FileVersion is written into saved project files and checked on load.
const FileVersion = "1.0.0"

// File is the on-disk envelope for a saved placement run.
type File struct {
	Version string        `json:"version"`
	Name    string        `json:"name,omitempty"`
	Result  engine.Result `json:"result"`
}

// Save persists a placement result to the given path as JSON.
// It creates any missing parent directories automatically.
func Save(path, name string, result engine.Result) error {
	file := File{
		Version: FileVersion,
		Name:    name,
		Result:  result,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a placement result from the given path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if file.Version == "" {
		return File{}, fmt.Errorf("invalid project file: missing version field")
	}
	return file, nil
}
