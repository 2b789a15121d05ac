// File: filex.go
// Title: Core File Utilities
// Description: Implements file operation utilities including safe reading
//              and writing, path manipulation, directory listing, and size
//              formatting for scene documents and tool output.
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-10
//
// Change History:
// - 2025-11-10 v0.1.0: Initial implementation with file utilities

package filex

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileInfo represents extended file information
type FileInfo struct {
	Name    string      // File name
	Path    string      // Full file path
	Size    int64       // File size in bytes
	Mode    os.FileMode // File mode
	ModTime time.Time   // Last modification time
	IsDir   bool        // Whether it's a directory
	Ext     string      // File extension
}

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsReadable checks if the file is readable
func IsReadable(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()
	return true
}

// GetFileInfo returns extended file information
func GetFileInfo(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to get file info for %s: %w", path, err)
	}

	absPath, _ := filepath.Abs(path)
	ext := filepath.Ext(path)

	fileInfo := FileInfo{
		Name:    info.Name(),
		Path:    absPath,
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
		Ext:     ext,
	}

	return fileInfo, nil
}

// Size returns the size of a file in bytes
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to get size of %s: %w", path, err)
	}
	return info.Size(), nil
}

// FormatSize formats a size in bytes to a human-readable string
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// ===============================
// File Reading Operations
// ===============================

// ReadFile reads the entire file and returns its contents
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return content, nil
}

// ReadString reads the entire file and returns its contents as a string
func ReadString(path string) (string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ReadLines reads the file and returns its contents as a slice of lines
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lines from %s: %w", path, err)
	}

	return lines, nil
}

// ===============================
// File Writing Operations
// ===============================

// WriteFile writes data to a file, creating it if necessary
func WriteFile(path string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(path, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// WriteString writes a string to a file
func WriteString(path, content string, perm os.FileMode) error {
	return WriteFile(path, []byte(content), perm)
}

// ===============================
// Directory Operations
// ===============================

// ListDir returns the contents of a directory
func ListDir(path string) ([]FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	var fileInfos []FileInfo
	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())
		info, err := GetFileInfo(entryPath)
		if err != nil {
			// Skip files that can't be read
			continue
		}
		fileInfos = append(fileInfos, info)
	}

	return fileInfos, nil
}

// ListFiles returns only files (not directories) in a directory
func ListFiles(path string) ([]FileInfo, error) {
	allEntries, err := ListDir(path)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, entry := range allEntries {
		if !entry.IsDir {
			files = append(files, entry)
		}
	}

	return files, nil
}

// Find searches for files matching a pattern in a directory tree
func Find(root, pattern string) ([]string, error) {
	var matches []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		matched, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil {
			return err
		}

		if matched {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("error during file search: %w", err)
	}

	return matches, nil
}

// ===============================
// Path Operations
// ===============================

// AbsPath returns the absolute path for the given path
func AbsPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s: %w", path, err)
	}
	return abs, nil
}

// RelPath returns the relative path from base to target
func RelPath(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve relative path from %s to %s: %w", base, target, err)
	}
	return rel, nil
}

// Dir returns the directory portion of a path
func Dir(path string) string {
	return filepath.Dir(path)
}

// Base returns the last element of a path
func Base(path string) string {
	return filepath.Base(path)
}

// Ext returns the file extension of a path
func Ext(path string) string {
	return filepath.Ext(path)
}

// Join joins path elements into a single path
func Join(elements ...string) string {
	return filepath.Join(elements...)
}

// Split splits a path into directory and file components
func Split(path string) (dir, file string) {
	return filepath.Split(path)
}

// Clean returns the shortest path name equivalent to path
func Clean(path string) string {
	return filepath.Clean(path)
}
