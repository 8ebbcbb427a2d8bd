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

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SpanKind is an enumeration of inline content types.
// The zero value is not a valid kind.
type SpanKind uint16

const (
	PlainKind SpanKind = 1 + iota
	BoldKind
	ItalicKind
	CodeKind
	LinkKind
	ImageKind
)

var spanKindNames = [...]string{
	PlainKind:  "PlainKind",
	BoldKind:   "BoldKind",
	ItalicKind: "ItalicKind",
	CodeKind:   "CodeKind",
	LinkKind:   "LinkKind",
	ImageKind:  "ImageKind",
}

func (kind SpanKind) String() string {
	if int(kind) < len(spanKindNames) && spanKindNames[kind] != "" {
		return spanKindNames[kind]
	}
	return fmt.Sprintf("SpanKind(%d)", uint16(kind))
}

// A Span is a run of inline text with a single kind.
// URL is only set for [LinkKind] and [ImageKind] spans;
// for images, Text is the alternate text.
// Spans are comparable with ==.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

func (span Span) String() string {
	if span.URL == "" {
		return fmt.Sprintf("%v(%q)", span.Kind, span.Text)
	}
	return fmt.Sprintf("%v(%q, %q)", span.Kind, span.Text, span.URL)
}

// Node converts the span into a leaf [Node].
func (span Span) Node() (*Node, error) {
	switch span.Kind {
	case PlainKind:
		return NewText(span.Text), nil
	case BoldKind:
		return NewLeaf(atom.B.String(), span.Text), nil
	case ItalicKind:
		return NewLeaf(atom.I.String(), span.Text), nil
	case CodeKind:
		return NewLeaf(atom.Code.String(), span.Text), nil
	case LinkKind:
		return NewLeaf(atom.A.String(), span.Text,
			html.Attribute{Key: atom.Href.String(), Val: span.URL},
		), nil
	case ImageKind:
		return NewLeaf(atom.Img.String(), "",
			html.Attribute{Key: atom.Src.String(), Val: span.URL},
			html.Attribute{Key: atom.Alt.String(), Val: span.Text},
		), nil
	default:
		return nil, fmt.Errorf("convert %v to node: %w", span, ErrInvalidSpanKind)
	}
}

// spanNodes converts a sequence of spans into leaf nodes.
func spanNodes(spans []Span) ([]*Node, error) {
	nodes := make([]*Node, 0, len(spans))
	for _, span := range spans {
		n, err := span.Node()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
