package vdom

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes the node tree as HTML.
func Render(w io.Writer, n *VNode) error {
	nodes, err := toHTML(n)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		if err := html.Render(w, node); err != nil {
			return err
		}
	}
	return nil
}

// RenderString renders the node tree to a string.
func RenderString(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Component adapts a node tree to a templ component.
func Component(n *VNode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Render(w, n)
	})
}

func toHTML(n *VNode) ([]*html.Node, error) {
	if n == nil {
		return nil, nil
	}

	if n.Tag == "" {
		var out []*html.Node
		if n.Content != "" {
			out = append(out, &html.Node{Type: html.TextNode, Data: n.Content})
		}
		for _, child := range n.Children {
			nodes, err := toHTML(child)
			if err != nil {
				return nil, err
			}
			out = append(out, nodes...)
		}
		return out, nil
	}

	tag := strings.ToLower(n.Tag)
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attributes(n.Attributes),
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}

	if n.RawHTML != "" {
		fragment, err := html.ParseFragment(strings.NewReader(n.RawHTML), &html.Node{
			Type:     html.ElementNode,
			Data:     tag,
			DataAtom: el.DataAtom,
		})
		if err != nil {
			return nil, fmt.Errorf("parse raw html in <%s>: %w", tag, err)
		}
		for _, node := range fragment {
			el.AppendChild(node)
		}
	}

	for _, child := range n.Children {
		nodes, err := toHTML(child)
		if err != nil {
			return nil, err
		}
		for _, node := range nodes {
			el.AppendChild(node)
		}
	}

	return []*html.Node{el}, nil
}

func attributes(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]html.Attribute, 0, len(attrs))
	for _, key := range slices.Sorted(maps.Keys(attrs)) {
		val, ok := attrString(attrs[key])
		if !ok {
			continue
		}
		out = append(out, html.Attribute{Key: key, Val: val})
	}
	return out
}

// attrString converts an attribute value; ok is false when the attribute
// should be omitted.
func attrString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		return "", val
	case int:
		return strconv.Itoa(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case fmt.Stringer:
		return val.String(), true
	case func():
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}
