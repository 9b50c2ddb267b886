package huffman

import "github.com/katalvlaran/algokit/frontier"

// Build constructs the Huffman tree for f.
// Returns ErrEmptyInput when f has no symbols.
func Build(f *Frequencies) (*Tree, error) {
	if f == nil || f.Len() == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{Nodes: make([]Node, 0, 2*f.Len())}
	pq := frontier.NewWithCapacity[int](f.Len())
	for _, sym := range f.order {
		idx := t.add(Node{Symbol: sym, Freq: f.counts[sym], Left: none, Right: none, Leaf: true})
		pq.Push(f.counts[sym], idx)
	}

	if pq.Len() == 1 {
		leaf, _ := pq.Pop()
		t.Root = t.add(Node{Freq: leaf.Priority, Left: leaf.Payload, Right: none})
		return t, nil
	}

	for pq.Len() > 1 {
		left, _ := pq.Pop()
		right, _ := pq.Pop()
		sum := left.Priority + right.Priority
		pq.Push(sum, t.add(Node{Freq: sum, Left: left.Payload, Right: right.Payload}))
	}
	root, _ := pq.Pop()
	t.Root = root.Payload

	return t, nil
}

func (t *Tree) add(n Node) int {
	t.Nodes = append(t.Nodes, n)
	return len(t.Nodes) - 1
}

// Leaves returns the number of leaf nodes.
func (t *Tree) Leaves() int {
	n := 0
	for _, nd := range t.Nodes {
		if nd.Leaf {
			n++
		}
	}

	return n
}
