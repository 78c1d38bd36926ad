package vdom

import "strings"

// Walk visits the tree depth-first, parents before children. Returning false
// from fn skips the node's children.
func Walk(n *VNode, fn func(*VNode) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// FindAll returns every node matching pred in document order.
func FindAll(n *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(n, func(v *VNode) bool {
		if pred(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// Find returns the first node matching pred.
func Find(n *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(n, func(v *VNode) bool {
		if found != nil {
			return false
		}
		if pred(v) {
			found = v
			return false
		}
		return true
	})
	return found
}

// HasClass reports whether the node's class list contains name.
func HasClass(name string) func(*VNode) bool {
	return func(v *VNode) bool {
		for _, c := range strings.Fields(v.Class()) {
			if c == name {
				return true
			}
		}
		return false
	}
}

// IsTag matches element nodes by tag name.
func IsTag(tag string) func(*VNode) bool {
	return func(v *VNode) bool {
		return strings.EqualFold(v.Tag, tag)
	}
}

// TextContent concatenates the text of the node and its descendants.
func TextContent(n *VNode) string {
	var b strings.Builder
	Walk(n, func(v *VNode) bool {
		b.WriteString(v.Content)
		return true
	})
	return b.String()
}
