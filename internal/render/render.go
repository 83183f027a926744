// Package render produces the human-readable connector rendering and the
// summary counts of a built tree.
package render

import (
	"strings"

	"github.com/temirov/ftree/internal/types"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

// Options controls rendering of a built tree.
type Options struct {
	// ShowFullPath appends the path to directory labels.
	ShowFullPath bool
}

// Render returns the pre-order connector rendering of the tree, one line per
// node. The root is rendered like any other node with isLast true, since it
// has no siblings.
func Render(node types.Node, options Options) string {
	var lineBuilder strings.Builder
	renderNode(&lineBuilder, node, "", true, options)
	return lineBuilder.String()
}

func renderNode(lineBuilder *strings.Builder, node types.Node, prefix string, isLast bool, options Options) {
	switch typedNode := node.(type) {
	case types.ErrorNode:
		lineBuilder.WriteString(prefix + treeLastConnector + typedNode.Message + "\n")
	case types.FileNode:
		lineBuilder.WriteString(prefix + connectorFor(isLast) + typedNode.Name + "\n")
	case types.DirectoryNode:
		label := typedNode.Name
		if options.ShowFullPath {
			label = typedNode.Name + " (" + typedNode.Path + ")"
		}
		lineBuilder.WriteString(prefix + connectorFor(isLast) + label + "\n")
		childPrefix := prefix + treeBranchPadding
		if isLast {
			childPrefix = prefix + treeLastPadding
		}
		for childIndex, childNode := range typedNode.Children {
			renderNode(lineBuilder, childNode, childPrefix, childIndex == len(typedNode.Children)-1, options)
		}
	}
}

func connectorFor(isLast bool) string {
	if isLast {
		return treeLastConnector
	}
	return treeBranchConnector
}
