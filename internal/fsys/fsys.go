// Package fsys provides the filesystem query surface the tree builder
// traverses. The builder depends on the interface only, so tests run against
// an in-memory implementation.
package fsys

import (
	"errors"
	"os"
	"path/filepath"
)

// Filesystem answers the queries required to build a folder structure tree.
type Filesystem interface {
	// ListEntries returns the immediate entry names of a directory.
	ListEntries(directoryPath string) ([]string, error)
	// IsDirectory reports whether the path is an existing directory.
	IsDirectory(path string) bool
	// FileSize returns the size of the file in bytes, or zero when the file
	// no longer exists at query time.
	FileSize(path string) int64
	// BaseName returns the last element of the path.
	BaseName(path string) string
	// Join joins a directory path with an entry name.
	Join(directoryPath string, entryName string) string
}

// OSFilesystem implements Filesystem with the host operating system.
type OSFilesystem struct{}

// NewOSFilesystem constructs the operating system backed Filesystem.
func NewOSFilesystem() *OSFilesystem {
	return &OSFilesystem{}
}

// ListEntries returns the entry names of the directory at directoryPath.
func (OSFilesystem) ListEntries(directoryPath string) ([]string, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, readDirectoryError
	}
	entryNames := make([]string, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryNames = append(entryNames, directoryEntry.Name())
	}
	return entryNames, nil
}

// IsDirectory reports whether path exists and is a directory.
func (OSFilesystem) IsDirectory(path string) bool {
	fileInformation, statError := os.Stat(path)
	return statError == nil && fileInformation.IsDir()
}

// FileSize returns the file size in bytes, or zero when the path can no
// longer be queried.
func (OSFilesystem) FileSize(path string) int64 {
	fileInformation, statError := os.Stat(path)
	if statError != nil {
		return 0
	}
	return fileInformation.Size()
}

// BaseName returns the last element of path.
func (OSFilesystem) BaseName(path string) string {
	return filepath.Base(path)
}

// Join joins directoryPath and entryName with the host separator.
func (OSFilesystem) Join(directoryPath string, entryName string) string {
	return filepath.Join(directoryPath, entryName)
}

var _ Filesystem = (*OSFilesystem)(nil)

// IsPermissionDenied reports whether an enumeration failure was caused by
// missing permissions.
func IsPermissionDenied(enumerationError error) bool {
	return errors.Is(enumerationError, os.ErrPermission)
}
