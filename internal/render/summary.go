package render

import (
	"github.com/temirov/ftree/internal/types"
)

// Summary holds exact node counts for a built tree. The root directory counts
// as one directory.
type Summary struct {
	Directories int
	Files       int
	Errors      int
	TotalBytes  int64
}

// Summarize counts node kinds in pre-order. No node is double-counted.
func Summarize(node types.Node) Summary {
	var summary Summary
	countNode(node, &summary)
	return summary
}

func countNode(node types.Node, summary *Summary) {
	switch typedNode := node.(type) {
	case types.DirectoryNode:
		summary.Directories++
		for _, childNode := range typedNode.Children {
			countNode(childNode, summary)
		}
	case types.FileNode:
		summary.Files++
		summary.TotalBytes += typedNode.SizeBytes
	case types.ErrorNode:
		summary.Errors++
	}
}
