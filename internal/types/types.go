// Package types defines the cross-package data structures used by the ftree CLI.
package types

const (
	NodeTypeDirectory = "directory"
	NodeTypeFile      = "file"
	NodeTypeError     = "error"

	FormatText = "text"
	FormatJSON = "json"

	TextFileExtension = ".txt"
	JSONFileExtension = ".json"
)

// Node is a node of a built folder structure tree. The set of implementations
// is closed: DirectoryNode, FileNode and ErrorNode.
type Node interface {
	// NodeType returns the type discriminator used by the structured export.
	NodeType() string
}

// DirectoryNode is a traversed directory. Children are ordered at construction
// time, directories before files and case-insensitively by name within each
// group, and are never re-sorted afterwards.
type DirectoryNode struct {
	Name     string
	Path     string
	Children []Node
}

// FileNode is a regular file entry with its size at enumeration time.
type FileNode struct {
	Name      string
	Path      string
	SizeBytes int64
}

// ErrorNode stands in for a failed directory enumeration. It is always a leaf
// and carries no path.
type ErrorNode struct {
	Message string
}

// NodeType identifies the node as a directory.
func (DirectoryNode) NodeType() string { return NodeTypeDirectory }

// NodeType identifies the node as a file.
func (FileNode) NodeType() string { return NodeTypeFile }

// NodeType identifies the node as an error placeholder.
func (ErrorNode) NodeType() string { return NodeTypeError }

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// ExportNode is the structured export representation of a tree node. Key order
// is fixed by the field order; Size is present only for file nodes, including
// files of size zero.
type ExportNode struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Path     string        `json:"path,omitempty"`
	Size     *int64        `json:"size,omitempty"`
	Children []*ExportNode `json:"children,omitempty"`
}
