package vdom

// VNode represents a virtual DOM node. A node with an empty Tag is a text
// node holding Content.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Escaped text rendered before the children
	RawHTML    string         // Trusted markup rendered after Content
	OnClick    func()         // Optional click event handler
}

// NewVNode creates a new VNode. Nil children are dropped so callers can pass
// optional sections inline.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   compact(children),
		Content:    content,
		OnClick:    onClick,
	}
}

func compact(children []*VNode) []*VNode {
	if len(children) == 0 {
		return nil
	}
	out := make([]*VNode, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return &VNode{Content: content}
}

// El creates an element with the given children.
func El(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// TextEl creates an element whose only content is text.
func TextEl(tag string, attrs map[string]any, content string) *VNode {
	return NewVNode(tag, attrs, nil, content)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Anchor creates an <a> VNode pointing at href.
func Anchor(href string, attrs map[string]any, children ...*VNode) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, children, "")
}

// Raw wraps trusted markup in a container element.
func Raw(tag string, attrs map[string]any, markup string) *VNode {
	n := NewVNode(tag, attrs, nil, "")
	n.RawHTML = markup
	return n
}

// Class returns the node's class attribute, or "".
func (v *VNode) Class() string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes["class"].(string)
	return s
}

// Attr returns the string form of an attribute, or "".
func (v *VNode) Attr(name string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	val, ok := v.Attributes[name]
	if !ok {
		return ""
	}
	s, _ := attrString(val)
	return s
}
