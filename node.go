// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package sitemark

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// NodeKind is an enumeration of values returned by [*Node.Kind].
type NodeKind uint8

const (
	// LeafNode is an element with a value and no children.
	LeafNode NodeKind = 1 + iota
	// ParentNode is an element with one or more children.
	ParentNode
)

func (kind NodeKind) String() string {
	switch kind {
	case LeafNode:
		return "LeafNode"
	case ParentNode:
		return "ParentNode"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(kind))
	}
}

// A Node is an element in an HTML tree.
// Leaf nodes hold a value and parent nodes hold children.
// Each parent exclusively owns its children.
type Node struct {
	kind     NodeKind
	tag      string
	value    string
	hasValue bool
	props    []html.Attribute
	children []*Node
}

// NewText returns a leaf node without a tag,
// which renders as its value verbatim.
func NewText(value string) *Node {
	return NewLeaf("", value)
}

// NewLeaf returns a leaf node.
// An empty tag renders the value without any surrounding element.
func NewLeaf(tag, value string, props ...html.Attribute) *Node {
	return &Node{
		kind:     LeafNode,
		tag:      tag,
		value:    value,
		hasValue: true,
		props:    props,
	}
}

// NewParent returns a parent node that takes ownership of children.
func NewParent(tag string, children []*Node, props ...html.Attribute) *Node {
	return &Node{
		kind:     ParentNode,
		tag:      tag,
		props:    props,
		children: children,
	}
}

// Kind returns the type of node or zero if the node is nil.
func (n *Node) Kind() NodeKind {
	if n == nil {
		return 0
	}
	return n.kind
}

// Tag returns the node's element name.
// Leaf nodes that render as plain text have an empty tag.
func (n *Node) Tag() string {
	if n == nil {
		return ""
	}
	return n.tag
}

// Value returns a leaf node's value
// and whether the node has one.
func (n *Node) Value() (_ string, ok bool) {
	if n == nil {
		return "", false
	}
	return n.value, n.hasValue
}

// Props returns the node's attributes in render order.
func (n *Node) Props() []html.Attribute {
	if n == nil {
		return nil
	}
	return n.props
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i'th child of the node.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// AppendChild adds c to the end of a parent node's children.
// It panics if n is not a parent node.
func (n *Node) AppendChild(c *Node) {
	if n.Kind() != ParentNode {
		panic("AppendChild on non-parent Node")
	}
	n.children = append(n.children, c)
}

// String returns a debugging representation of the node.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	sb := new(strings.Builder)
	sb.WriteString(n.kind.String())
	sb.WriteString("(")
	if n.tag == "" {
		sb.WriteString("-")
	} else {
		sb.WriteString(n.tag)
	}
	if n.kind == LeafNode {
		fmt.Fprintf(sb, ", %q", n.value)
	}
	if len(n.props) > 0 {
		sb.WriteString(",")
		sb.WriteString(RenderProps(n.props))
	}
	for i, c := range n.children {
		if i == 0 {
			sb.WriteString(", [")
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(c.String())
		if i == len(n.children)-1 {
			sb.WriteString("]")
		}
	}
	sb.WriteString(")")
	return sb.String()
}

// Render converts the node and its descendants into an HTML string.
func (n *Node) Render() (string, error) {
	buf, err := n.AppendHTML(nil)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// AppendHTML appends the rendered HTML of the node to dst
// and returns the resulting byte slice.
// Attribute values and text are written verbatim.
func (n *Node) AppendHTML(dst []byte) ([]byte, error) {
	r := &renderState{dst: dst}
	Walk(n, &WalkOptions{
		Pre:  r.pre,
		Post: r.post,
	})
	if r.err != nil {
		return dst, r.err
	}
	return r.dst, nil
}

// RenderProps formats attributes as they appear inside an opening tag.
// An empty list renders as the empty string.
func RenderProps(props []html.Attribute) string {
	return string(appendProps(nil, props))
}

type renderState struct {
	dst []byte
	err error
}

func (r *renderState) pre(c *Cursor) bool {
	if r.err != nil {
		return false
	}
	n := c.Node()
	switch n.Kind() {
	case LeafNode:
		if !n.hasValue {
			r.err = fmt.Errorf("render %s: %w", n, ErrMissingValue)
			return false
		}
		if n.tag == "" {
			r.dst = append(r.dst, n.value...)
			return false
		}
		r.openTag(n)
		r.dst = append(r.dst, n.value...)
		r.closeTag(n)
		return false
	case ParentNode:
		if n.tag == "" {
			r.err = fmt.Errorf("render %s: %w", n, ErrMissingTag)
			return false
		}
		if len(n.children) == 0 {
			r.err = fmt.Errorf("render %s: %w", n, ErrEmptyChildren)
			return false
		}
		r.openTag(n)
		return true
	default:
		r.err = fmt.Errorf("render %s: %w", n, ErrMissingValue)
		return false
	}
}

func (r *renderState) post(c *Cursor) bool {
	if r.err != nil {
		return false
	}
	r.closeTag(c.Node())
	return true
}

func (r *renderState) openTag(n *Node) {
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, n.tag...)
	r.dst = appendProps(r.dst, n.props)
	r.dst = append(r.dst, '>')
}

func (r *renderState) closeTag(n *Node) {
	r.dst = append(r.dst, "</"...)
	r.dst = append(r.dst, n.tag...)
	r.dst = append(r.dst, '>')
}

func appendProps(dst []byte, props []html.Attribute) []byte {
	for _, attr := range props {
		dst = append(dst, ' ')
		dst = append(dst, attr.Key...)
		dst = append(dst, `="`...)
		dst = append(dst, attr.Val...)
		dst = append(dst, '"')
	}
	return dst
}
