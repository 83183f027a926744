// Package export converts built trees into their structured and text
// representations and writes them to files.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/ftree/internal/render"
	"github.com/temirov/ftree/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	exportFilePermissions = 0o644

	// errorUnknownNodeTypeFormat reports an unrecognized type discriminator
	// during reconstruction.
	errorUnknownNodeTypeFormat = "unknown node type %q"
	// errorNilExportNodeMessage reports a nil structured node during reconstruction.
	errorNilExportNodeMessage = "nil export node"
	// errorMarshalFormat reports a failed structured serialization.
	errorMarshalFormat = "marshaling structured export: %w"
)

// ToExportNode converts a tree into its structured export representation.
func ToExportNode(node types.Node) *types.ExportNode {
	switch typedNode := node.(type) {
	case types.DirectoryNode:
		exportNode := &types.ExportNode{
			Name: typedNode.Name,
			Type: types.NodeTypeDirectory,
			Path: typedNode.Path,
		}
		for _, childNode := range typedNode.Children {
			exportNode.Children = append(exportNode.Children, ToExportNode(childNode))
		}
		return exportNode
	case types.FileNode:
		sizeBytes := typedNode.SizeBytes
		return &types.ExportNode{
			Name: typedNode.Name,
			Type: types.NodeTypeFile,
			Path: typedNode.Path,
			Size: &sizeBytes,
		}
	case types.ErrorNode:
		return &types.ExportNode{
			Name: typedNode.Message,
			Type: types.NodeTypeError,
		}
	}
	return nil
}

// FromExportNode reconstructs a tree from its structured representation,
// preserving node kinds, names, paths, sizes and child order.
func FromExportNode(exportNode *types.ExportNode) (types.Node, error) {
	if exportNode == nil {
		return nil, errors.New(errorNilExportNodeMessage)
	}
	switch exportNode.Type {
	case types.NodeTypeDirectory:
		directoryNode := types.DirectoryNode{
			Name: exportNode.Name,
			Path: exportNode.Path,
		}
		for _, childExportNode := range exportNode.Children {
			childNode, childError := FromExportNode(childExportNode)
			if childError != nil {
				return nil, childError
			}
			directoryNode.Children = append(directoryNode.Children, childNode)
		}
		return directoryNode, nil
	case types.NodeTypeFile:
		fileNode := types.FileNode{
			Name: exportNode.Name,
			Path: exportNode.Path,
		}
		if exportNode.Size != nil {
			fileNode.SizeBytes = *exportNode.Size
		}
		return fileNode, nil
	case types.NodeTypeError:
		return types.ErrorNode{Message: exportNode.Name}, nil
	}
	return nil, fmt.Errorf(errorUnknownNodeTypeFormat, exportNode.Type)
}

// MarshalStructured serializes the structured export with stable key order
// and two-space indentation.
func MarshalStructured(node types.Node) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(ToExportNode(node), indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", fmt.Errorf(errorMarshalFormat, jsonEncodeError)
	}
	return string(encoded), nil
}

// WriteStructured writes the structured export to outputPath.
func WriteStructured(node types.Node, outputPath string) error {
	structured, marshalError := MarshalStructured(node)
	if marshalError != nil {
		return marshalError
	}
	return os.WriteFile(outputPath, []byte(structured+"\n"), exportFilePermissions)
}

// WriteText writes the renderer output verbatim to outputPath.
func WriteText(node types.Node, options render.Options, outputPath string) error {
	return os.WriteFile(outputPath, []byte(render.Render(node, options)), exportFilePermissions)
}

// ResolveOutputPath selects the export format from the file extension:
// ".json" selects the structured export, anything else selects text, with
// ".txt" appended when the extension is neither of the recognized ones.
// Extension matching is case-insensitive.
func ResolveOutputPath(outputPath string) (string, string) {
	extension := strings.ToLower(filepath.Ext(outputPath))
	if extension == types.JSONFileExtension {
		return outputPath, types.FormatJSON
	}
	if extension != types.TextFileExtension {
		outputPath += types.TextFileExtension
	}
	return outputPath, types.FormatText
}

// WriteFile exports the tree to outputPath in the format selected by its
// extension and returns the path actually written.
func WriteFile(node types.Node, options render.Options, outputPath string) (string, error) {
	resolvedPath, format := ResolveOutputPath(outputPath)
	if format == types.FormatJSON {
		return resolvedPath, WriteStructured(node, resolvedPath)
	}
	return resolvedPath, WriteText(node, options, resolvedPath)
}
