// Package builder constructs the in-memory folder structure tree.
package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/temirov/ftree/internal/config"
	"github.com/temirov/ftree/internal/fsys"
	"github.com/temirov/ftree/internal/types"
)

const (
	// permissionDeniedMessage is the error-node message for an unreadable directory.
	permissionDeniedMessage = "[Permission Denied]"
	// enumerationErrorFormat is the error-node message for any other enumeration failure.
	enumerationErrorFormat = "[Error: %v]"

	hiddenEntryPrefix = "."
	rootDepth         = 0
)

// Build constructs the tree rooted at rootPath. Traversal failures never
// surface as errors; they become error nodes inside the tree. The caller is
// responsible for ensuring rootPath exists and is a directory before calling.
func Build(filesystem fsys.Filesystem, rootPath string, settings config.Settings) types.DirectoryNode {
	return buildDirectory(filesystem, rootPath, settings, rootDepth)
}

// buildDirectory recursively builds the node for directoryPath. A directory at
// the configured depth limit is returned with empty children and no
// enumeration; its parent still appends it, signalling that the subdirectory
// exists but was not expanded.
func buildDirectory(filesystem fsys.Filesystem, directoryPath string, settings config.Settings, currentDepth int) types.DirectoryNode {
	directoryNode := types.DirectoryNode{
		Name: filesystem.BaseName(directoryPath),
		Path: directoryPath,
	}

	if settings.MaxDepth != nil && currentDepth >= *settings.MaxDepth {
		return directoryNode
	}

	entryNames, enumerationError := filesystem.ListEntries(directoryPath)
	if enumerationError != nil {
		directoryNode.Children = append(directoryNode.Children, errorNodeFor(enumerationError))
		return directoryNode
	}

	for _, entry := range orderEntries(filesystem, directoryPath, entryNames) {
		if settings.ExcludeHidden && strings.HasPrefix(entry.name, hiddenEntryPrefix) {
			continue
		}
		if entry.isDirectory {
			childNode := buildDirectory(filesystem, entry.path, settings, currentDepth+1)
			directoryNode.Children = append(directoryNode.Children, childNode)
			continue
		}
		if settings.IncludeFiles {
			directoryNode.Children = append(directoryNode.Children, types.FileNode{
				Name:      entry.name,
				Path:      entry.path,
				SizeBytes: filesystem.FileSize(entry.path),
			})
		}
	}

	return directoryNode
}

// directoryEntry pairs an entry name with its resolved path and kind.
type directoryEntry struct {
	name        string
	path        string
	isDirectory bool
}

// orderEntries sorts enumerated names: directories first, then files, ties
// broken by case-insensitive name ascending. The sort is stable.
func orderEntries(filesystem fsys.Filesystem, directoryPath string, entryNames []string) []directoryEntry {
	entries := make([]directoryEntry, 0, len(entryNames))
	for _, entryName := range entryNames {
		entryPath := filesystem.Join(directoryPath, entryName)
		entries = append(entries, directoryEntry{
			name:        entryName,
			path:        entryPath,
			isDirectory: filesystem.IsDirectory(entryPath),
		})
	}
	sort.SliceStable(entries, func(firstIndex, secondIndex int) bool {
		first, second := entries[firstIndex], entries[secondIndex]
		if first.isDirectory != second.isDirectory {
			return first.isDirectory
		}
		return strings.ToLower(first.name) < strings.ToLower(second.name)
	})
	return entries
}

// errorNodeFor maps an enumeration failure to its error-node message.
func errorNodeFor(enumerationError error) types.ErrorNode {
	if fsys.IsPermissionDenied(enumerationError) {
		return types.ErrorNode{Message: permissionDeniedMessage}
	}
	return types.ErrorNode{Message: fmt.Sprintf(enumerationErrorFormat, enumerationError)}
}
