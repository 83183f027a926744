package builder_test

import (
	"errors"
	"os"
	"path"
	"testing"

	"github.com/temirov/ftree/internal/builder"
	"github.com/temirov/ftree/internal/config"
	"github.com/temirov/ftree/internal/render"
	"github.com/temirov/ftree/internal/types"
)

// fakeFilesystem is an in-memory filesystem for builder tests. Directories map
// to their entry names; paths present in failures fail enumeration while still
// reporting as directories.
type fakeFilesystem struct {
	directories map[string][]string
	fileSizes   map[string]int64
	failures    map[string]error
}

func (filesystem fakeFilesystem) ListEntries(directoryPath string) ([]string, error) {
	if enumerationError, exists := filesystem.failures[directoryPath]; exists {
		return nil, enumerationError
	}
	entryNames, exists := filesystem.directories[directoryPath]
	if !exists {
		return nil, os.ErrNotExist
	}
	return entryNames, nil
}

func (filesystem fakeFilesystem) IsDirectory(candidatePath string) bool {
	if _, exists := filesystem.directories[candidatePath]; exists {
		return true
	}
	_, failing := filesystem.failures[candidatePath]
	return failing
}

func (filesystem fakeFilesystem) FileSize(candidatePath string) int64 {
	return filesystem.fileSizes[candidatePath]
}

func (filesystem fakeFilesystem) BaseName(candidatePath string) string {
	return path.Base(candidatePath)
}

func (filesystem fakeFilesystem) Join(directoryPath string, entryName string) string {
	return path.Join(directoryPath, entryName)
}

func childNames(directoryNode types.DirectoryNode) []string {
	names := make([]string, 0, len(directoryNode.Children))
	for _, childNode := range directoryNode.Children {
		switch typedNode := childNode.(type) {
		case types.DirectoryNode:
			names = append(names, typedNode.Name)
		case types.FileNode:
			names = append(names, typedNode.Name)
		case types.ErrorNode:
			names = append(names, typedNode.Message)
		}
	}
	return names
}

func assertChildNames(t *testing.T, directoryNode types.DirectoryNode, expected []string) {
	t.Helper()
	actual := childNames(directoryNode)
	if len(actual) != len(expected) {
		t.Fatalf("expected children %v, got %v", expected, actual)
	}
	for index := range expected {
		if actual[index] != expected[index] {
			t.Fatalf("expected children %v, got %v", expected, actual)
		}
	}
}

func depthLimit(value int) *int {
	limit := value
	return &limit
}

func TestBuildOrdersDirectoriesBeforeFiles(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{
			"/root":   {"b.txt", "A", "a.txt", "B"},
			"/root/A": {},
			"/root/B": {},
		},
		fileSizes: map[string]int64{
			"/root/b.txt": 1,
			"/root/a.txt": 2,
		},
	}

	tree := builder.Build(filesystem, "/root", config.DefaultSettings())

	assertChildNames(t, tree, []string{"A", "B", "a.txt", "b.txt"})
	if _, isDirectory := tree.Children[0].(types.DirectoryNode); !isDirectory {
		t.Fatalf("expected first child to be a directory, got %T", tree.Children[0])
	}
	if _, isFile := tree.Children[2].(types.FileNode); !isFile {
		t.Fatalf("expected third child to be a file, got %T", tree.Children[2])
	}
}

func TestBuildHiddenEntryFiltering(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{
			"/root":      {".git", ".env", "main.go"},
			"/root/.git": {},
		},
		fileSizes: map[string]int64{
			"/root/.env":    3,
			"/root/main.go": 5,
		},
	}

	testCases := []struct {
		name          string
		excludeHidden bool
		expected      []string
	}{
		{name: "hidden excluded", excludeHidden: true, expected: []string{"main.go"}},
		{name: "hidden included and sorted", excludeHidden: false, expected: []string{".git", ".env", "main.go"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.ExcludeHidden = testCase.excludeHidden
			tree := builder.Build(filesystem, "/root", settings)
			assertChildNames(t, tree, testCase.expected)
		})
	}
}

func TestBuildDepthCutoff(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{
			"/root":     {"sub"},
			"/root/sub": {"deep.txt"},
		},
		fileSizes: map[string]int64{"/root/sub/deep.txt": 9},
	}

	settings := config.DefaultSettings()
	settings.MaxDepth = depthLimit(1)
	tree := builder.Build(filesystem, "/root", settings)

	assertChildNames(t, tree, []string{"sub"})
	truncatedDirectory, isDirectory := tree.Children[0].(types.DirectoryNode)
	if !isDirectory {
		t.Fatalf("expected directory child, got %T", tree.Children[0])
	}
	if len(truncatedDirectory.Children) != 0 {
		t.Fatalf("expected depth-truncated directory to have no children, got %v", childNames(truncatedDirectory))
	}
}

func TestBuildDepthZeroReturnsEmptyRoot(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{"/root": {"anything.txt"}},
	}

	settings := config.DefaultSettings()
	settings.MaxDepth = depthLimit(0)
	tree := builder.Build(filesystem, "/root", settings)

	if tree.Name != "root" || tree.Path != "/root" {
		t.Fatalf("expected named root node, got %+v", tree)
	}
	if len(tree.Children) != 0 {
		t.Fatalf("expected no children at depth zero, got %v", childNames(tree))
	}
}

func TestBuildPermissionDenied(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{"/root": {"locked"}},
		failures: map[string]error{
			"/root/locked": &os.PathError{Op: "open", Path: "/root/locked", Err: os.ErrPermission},
		},
	}

	tree := builder.Build(filesystem, "/root", config.DefaultSettings())

	lockedDirectory, isDirectory := tree.Children[0].(types.DirectoryNode)
	if !isDirectory {
		t.Fatalf("expected directory child, got %T", tree.Children[0])
	}
	if len(lockedDirectory.Children) != 1 {
		t.Fatalf("expected exactly one error child, got %v", childNames(lockedDirectory))
	}
	errorChild, isError := lockedDirectory.Children[0].(types.ErrorNode)
	if !isError {
		t.Fatalf("expected error node, got %T", lockedDirectory.Children[0])
	}
	if errorChild.Message != "[Permission Denied]" {
		t.Fatalf("unexpected error message: %q", errorChild.Message)
	}
	summary := render.Summarize(tree)
	if summary.Errors != 1 {
		t.Fatalf("expected one counted error, got %d", summary.Errors)
	}
}

func TestBuildOtherEnumerationError(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{"/root": {"broken"}},
		failures:    map[string]error{"/root/broken": errors.New("device removed")},
	}

	tree := builder.Build(filesystem, "/root", config.DefaultSettings())

	brokenDirectory := tree.Children[0].(types.DirectoryNode)
	errorChild, isError := brokenDirectory.Children[0].(types.ErrorNode)
	if !isError {
		t.Fatalf("expected error node, got %T", brokenDirectory.Children[0])
	}
	if errorChild.Message != "[Error: device removed]" {
		t.Fatalf("unexpected error message: %q", errorChild.Message)
	}
}

func TestBuildExcludesFilesWhenConfigured(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{
			"/root":             {"docs", "readme.md"},
			"/root/docs":        {"guide.md", "images"},
			"/root/docs/images": {},
		},
		fileSizes: map[string]int64{
			"/root/readme.md":     10,
			"/root/docs/guide.md": 20,
		},
	}

	settings := config.DefaultSettings()
	settings.IncludeFiles = false
	tree := builder.Build(filesystem, "/root", settings)

	assertChildNames(t, tree, []string{"docs"})
	docsDirectory := tree.Children[0].(types.DirectoryNode)
	assertChildNames(t, docsDirectory, []string{"images"})
}

func TestBuildKeepsEmptyDirectories(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{
			"/root":       {"empty"},
			"/root/empty": {},
		},
	}

	tree := builder.Build(filesystem, "/root", config.DefaultSettings())

	assertChildNames(t, tree, []string{"empty"})
	emptyDirectory := tree.Children[0].(types.DirectoryNode)
	if len(emptyDirectory.Children) != 0 {
		t.Fatalf("expected empty directory, got %v", childNames(emptyDirectory))
	}
}

func TestBuildMissingFileSizeIsZero(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{"/root": {"vanished.txt"}},
	}

	tree := builder.Build(filesystem, "/root", config.DefaultSettings())

	fileChild, isFile := tree.Children[0].(types.FileNode)
	if !isFile {
		t.Fatalf("expected file node, got %T", tree.Children[0])
	}
	if fileChild.SizeBytes != 0 {
		t.Fatalf("expected zero size for vanished file, got %d", fileChild.SizeBytes)
	}
}

func TestBuildCountsMatchReachableEntries(t *testing.T) {
	filesystem := fakeFilesystem{
		directories: map[string][]string{
			"/root":            {"alpha", "one.txt"},
			"/root/alpha":      {"beta", "two.txt"},
			"/root/alpha/beta": {"three.txt"},
		},
		fileSizes: map[string]int64{
			"/root/one.txt":              1,
			"/root/alpha/two.txt":        2,
			"/root/alpha/beta/three.txt": 3,
		},
	}

	settings := config.DefaultSettings()
	settings.ExcludeHidden = false
	tree := builder.Build(filesystem, "/root", settings)
	summary := render.Summarize(tree)

	// Five entries reachable under the root, plus the root itself.
	if summary.Directories+summary.Files != 6 {
		t.Fatalf("expected 6 counted nodes, got %d directories and %d files", summary.Directories, summary.Files)
	}
	if summary.Directories != 3 || summary.Files != 3 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.TotalBytes != 6 {
		t.Fatalf("expected 6 total bytes, got %d", summary.TotalBytes)
	}
}
