package huffman

import (
	"fmt"
	"strings"
)

const (
	branchLeft  = "├── "
	branchRight = "└── "
	indentOpen  = "│   "
	indentBlank = "    "
)

// Render draws the tree as text, one node per line. Leaves print as
// "[sym] f=N" and internal nodes as "(f=N)". The root has no connector;
// left children hang from "├── " and right children from "└── ".
//
//	(f=4)
//	├── [b] f=1
//	└── [a] f=3
func (t *Tree) Render() string {
	type frame struct {
		node   int
		prefix string // indentation inherited from ancestors
		branch string // connector drawn before this node
		indent string // extra indentation for this node's children
	}

	var sb strings.Builder
	stack := []frame{{node: t.Root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := t.Nodes[top.node]
		sb.WriteString(top.prefix)
		sb.WriteString(top.branch)
		if nd.Leaf {
			fmt.Fprintf(&sb, "[%s] f=%d\n", Label(nd.Symbol), nd.Freq)
		} else {
			fmt.Fprintf(&sb, "(f=%d)\n", nd.Freq)
		}

		childPrefix := top.prefix + top.indent
		if nd.Right != none {
			stack = append(stack, frame{node: nd.Right, prefix: childPrefix, branch: branchRight, indent: indentBlank})
		}
		if nd.Left != none {
			stack = append(stack, frame{node: nd.Left, prefix: childPrefix, branch: branchLeft, indent: indentOpen})
		}
	}

	return sb.String()
}
