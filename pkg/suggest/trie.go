package suggest

import "unicode"

// node is a single trie vertex. Children are owned exclusively by their
// parent, so the structure is a tree by construction.
type node struct {
	children map[rune]*node
	count    int
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// insert walks the lowercased word from n, creating missing nodes, and
// bumps the terminal count of the last node. An empty word lands on n.
func (n *node) insert(word string) *node {
	curr := n
	for _, r := range word {
		r = unicode.ToLower(r)
		child, ok := curr.children[r]
		if !ok {
			child = newNode()
			curr.children[r] = child
		}
		curr = child
	}
	curr.count++
	return curr
}

// descend follows prefix literally (no case folding) and returns the node
// it ends on, or nil if some character has no edge.
func (n *node) descend(prefix string) *node {
	curr := n
	for _, r := range prefix {
		child, ok := curr.children[r]
		if !ok {
			return nil
		}
		curr = child
	}
	return curr
}

// walk visits n and every descendant depth-first. path holds the characters
// from the walk's origin down to n; visit must copy it if it keeps it.
func (n *node) walk(path []rune, visit func(path []rune, n *node)) {
	visit(path, n)
	for r, child := range n.children {
		child.walk(append(path, r), visit)
	}
}
