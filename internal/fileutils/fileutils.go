// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/sef-spiri/internal/models"
)

// XMLExtension is the extension of SEF inputs and SPIRI outputs.
const XMLExtension = ".xml"

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// CreateFile creates or truncates a file for writing, creating parent
// directories as needed.
func CreateFile(filePath string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}

	file, err := os.Create(filePath) // #nosec G304 -- path chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return file, nil
}

// HasExtension reports whether path ends in extension, ignoring case.
func HasExtension(path, extension string) bool {
	return strings.EqualFold(filepath.Ext(path), extension)
}

// EnsureExtension appends extension to path when path has none.
func EnsureExtension(path, extension string) string {
	if filepath.Ext(path) == "" {
		return path + extension
	}
	return path
}

// ListFilesWithExtension returns the files directly inside dirPath that carry
// extension, sorted by name.
func ListFilesWithExtension(dirPath, extension string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !HasExtension(entry.Name(), extension) {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// ExpandSelection turns a selection of files and directories into the list of
// XML files to process, in selection order. Directories contribute their XML
// files. Other entries are kept only when they carry the .xml extension, even
// if they do not exist, so that they surface as read errors later. A file
// selected twice is processed twice.
func ExpandSelection(selection []string) ([]string, error) {
	var files []string
	add := func(p string) {
		files = append(files, p)
	}

	for _, p := range selection {
		if p == "" {
			continue
		}
		if DirectoryExists(p) {
			dirFiles, err := ListFilesWithExtension(p, XMLExtension)
			if err != nil {
				return nil, err
			}
			for _, f := range dirFiles {
				add(f)
			}
			continue
		}
		if HasExtension(p, XMLExtension) {
			add(p)
		}
	}

	return files, nil
}
