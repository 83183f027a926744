package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/ftree/internal/config"
)

func TestIsSupportedFormat(t *testing.T) {
	testCases := []struct {
		format    string
		supported bool
	}{
		{format: "text", supported: true},
		{format: "json", supported: true},
		{format: "xml", supported: false},
		{format: "", supported: false},
	}
	for _, testCase := range testCases {
		if isSupportedFormat(testCase.format) != testCase.supported {
			t.Fatalf("format %q: expected supported=%v", testCase.format, testCase.supported)
		}
	}
}

func TestResolveAndValidateDirectory(t *testing.T) {
	rootDirectory := t.TempDir()
	filePath := filepath.Join(rootDirectory, "file.txt")
	if writeError := os.WriteFile(filePath, []byte("x"), 0o644); writeError != nil {
		t.Fatalf("write file: %v", writeError)
	}

	validated, validationError := resolveAndValidateDirectory(rootDirectory)
	if validationError != nil {
		t.Fatalf("expected valid directory, got %v", validationError)
	}
	if !validated.IsDir || validated.AbsolutePath == "" {
		t.Fatalf("unexpected validated path: %+v", validated)
	}

	if _, missingError := resolveAndValidateDirectory(filepath.Join(rootDirectory, "absent")); missingError == nil {
		t.Fatal("expected error for missing path")
	}
	if _, notDirectoryError := resolveAndValidateDirectory(filePath); notDirectoryError == nil {
		t.Fatal("expected error for non-directory path")
	}
}

func TestResolveDepthLimit(t *testing.T) {
	treeCommand := createTreeCommand()

	limit, depthError := resolveDepthLimit(treeCommand, config.TreeConfiguration{}, 0)
	if depthError != nil || limit != nil {
		t.Fatalf("expected unlimited depth, got %v, %v", limit, depthError)
	}

	configuredDepth := 2
	limit, depthError = resolveDepthLimit(treeCommand, config.TreeConfiguration{MaxDepth: &configuredDepth}, 0)
	if depthError != nil || limit == nil || *limit != 2 {
		t.Fatalf("expected configured depth 2, got %v, %v", limit, depthError)
	}

	if setError := treeCommand.Flags().Set(depthFlagName, "1"); setError != nil {
		t.Fatalf("set depth flag: %v", setError)
	}
	limit, depthError = resolveDepthLimit(treeCommand, config.TreeConfiguration{MaxDepth: &configuredDepth}, 1)
	if depthError != nil || limit == nil || *limit != 1 {
		t.Fatalf("expected flag depth 1 to win, got %v, %v", limit, depthError)
	}

	if setError := treeCommand.Flags().Set(depthFlagName, "-1"); setError != nil {
		t.Fatalf("set depth flag: %v", setError)
	}
	if _, negativeError := resolveDepthLimit(treeCommand, config.TreeConfiguration{}, -1); negativeError == nil {
		t.Fatal("expected error for negative depth")
	}
}
