package project

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes the project to path, replacing any existing file
func Save(path string, d *Data) error {
	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create project file: %w", err)
	}

	w := bufio.NewWriter(file)
	if err := d.Write(w); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write project file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close project file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace project file: %w", err)
	}
	return nil
}

// Load reads the project at path
func Load(path string) (*Data, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open project file: %w", err)
	}
	defer file.Close()

	d, err := Read(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// IsValid reports whether path exists and starts with the project header
func IsValid(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	magic, err := reader{r: bufio.NewReader(file)}.string("header")
	return err == nil && magic == Magic
}

// FileName replaces any extension of base with the project extension
func FileName(base string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + Extension
}
