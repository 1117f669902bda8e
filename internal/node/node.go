// Package node defines the renderable node tree produced by component
// renderers, along with its deterministic HTML serialization.
package node

import (
	"html"
	"io"
	"sort"
	"strings"
)

// Node is one element of a rendered tree. A Node with an empty Tag is a text
// node and carries its content in Text; all other nodes are elements with
// optional attributes and children.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// El constructs an element node with the given tag and children.
func El(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Text constructs a text node. Its content is HTML-escaped on serialization.
func Text(s string) *Node {
	return &Node{Text: s}
}

// Empty returns the placeholder emitted for absent entries. It serializes as
// a self-closing <empty/> element.
func Empty() *Node {
	return &Node{Tag: "empty"}
}

// WithAttr sets an attribute and returns the node for chaining.
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Append adds children and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// IsEmpty reports whether the node is the Empty placeholder.
func (n *Node) IsEmpty() bool {
	return n != nil && n.Tag == "empty" && len(n.Children) == 0 && n.Text == ""
}

// WriteHTML serializes the node tree to w. Attributes are written in sorted
// key order so output is deterministic; text content and attribute values are
// escaped.
func (n *Node) WriteHTML(w io.Writer) error {
	if n == nil {
		return nil
	}
	if n.Tag == "" {
		_, err := io.WriteString(w, html.EscapeString(n.Text))
		return err
	}

	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := io.WriteString(w, ` `+k+`="`+html.EscapeString(n.Attrs[k])+`"`); err != nil {
			return err
		}
	}

	if len(n.Children) == 0 && n.Text == "" {
		_, err := io.WriteString(w, "/>")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if n.Text != "" {
		if _, err := io.WriteString(w, html.EscapeString(n.Text)); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := child.WriteHTML(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// HTML returns the serialized form of the node tree.
func (n *Node) HTML() string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = n.WriteHTML(&b)
	return b.String()
}

// WriteAll serializes a sequence of nodes in order.
func WriteAll(w io.Writer, nodes []*Node) error {
	for _, n := range nodes {
		if err := n.WriteHTML(w); err != nil {
			return err
		}
	}
	return nil
}
