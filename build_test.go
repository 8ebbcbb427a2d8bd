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
	"errors"
	"testing"

	"golang.org/x/net/html"
)

func TestBuildBlock(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{
			name:  "Heading1",
			block: "# This is a H1 heading",
			want:  "<div><h1>This is a H1 heading</h1></div>",
		},
		{
			name:  "HeadingKeepsExtraSpace",
			block: "###  spaced",
			want:  "<div><h3> spaced</h3></div>",
		},
		{
			name:  "Code",
			block: "```\ndef hello_world():\n    print(\"Hello, world!\")\n```",
			want:  "<div><pre><code>\ndef hello_world():\n    print(\"Hello, world!\")\n</code></pre></div>",
		},
		{
			name:  "Quote",
			block: "> This is a blockquote.\n> It has **multiple** lines",
			want:  "<div><blockquote>This is a blockquote.\nIt has <b>multiple</b> lines</blockquote></div>",
		},
		{
			name:  "UnorderedList",
			block: "- a\n- b",
			want:  "<div><ul><li>a</li><li>b</li></ul></div>",
		},
		{
			name:  "OrderedListWithInline",
			block: "1. **one**\n2. [two](/two)",
			want:  `<div><ol><li><b>one</b></li><li><a href="/two">two</a></li></ol></div>`,
		},
		{
			name:  "ParagraphAcrossLines",
			block: "*italic\nspans lines*",
			want:  "<div><p><i>italic\nspans lines</i></p></div>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, err := BuildBlock(test.block)
			if err != nil {
				t.Fatal("BuildBlock:", err)
			}
			got, err := n.Render()
			if got != test.want || err != nil {
				t.Errorf("BuildBlock(%q).Render() = %q, %v; want %q, <nil>", test.block, got, err, test.want)
			}
		})
	}
}

func TestBuildBlockUnorderedListStructure(t *testing.T) {
	n, err := BuildBlock("- a\n- b")
	if err != nil {
		t.Fatal(err)
	}
	if n.Tag() != "div" || n.ChildCount() != 1 {
		t.Fatalf("root = %v; want div with 1 child", n)
	}
	list := n.Child(0)
	if list.Tag() != "ul" || list.ChildCount() != 2 {
		t.Fatalf("list = %v; want ul with 2 children", list)
	}
	for i, want := range []string{"a", "b"} {
		item := list.Child(i)
		if item.Kind() != ParentNode || item.Tag() != "li" || item.ChildCount() != 1 {
			t.Errorf("list.Child(%d) = %v; want li with 1 child", i, item)
			continue
		}
		leaf := item.Child(0)
		if got, ok := leaf.Value(); leaf.Kind() != LeafNode || leaf.Tag() != "" || got != want || !ok {
			t.Errorf("list.Child(%d).Child(0) = %v; want text leaf %q", i, leaf, want)
		}
	}
}

func TestBuildBlockListLinesAreIndependent(t *testing.T) {
	// Each line is tokenized separately, so a delimiter pair
	// spanning two items is unpaired in both.
	_, err := BuildBlock("- *a\n- b*")
	if !errors.Is(err, ErrUnpairedDelimiter) {
		t.Errorf("BuildBlock(...) error = %v; want %v", err, ErrUnpairedDelimiter)
	}
}

func TestBuildBlockIdempotentRender(t *testing.T) {
	const block = "Some **bold** and `code` with ![img](i.png)"
	n, err := BuildBlock(block)
	if err != nil {
		t.Fatal(err)
	}
	first, err := n.Render()
	if err != nil {
		t.Fatal(err)
	}
	second, err := n.Render()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("second Render() = %q; first = %q", second, first)
	}
}

func TestSpanNode(t *testing.T) {
	tests := []struct {
		span Span
		want string
	}{
		{Span{Kind: PlainKind, Text: "Hello world"}, "Hello world"},
		{Span{Kind: BoldKind, Text: "Hello world"}, "<b>Hello world</b>"},
		{Span{Kind: ItalicKind, Text: "Hello world"}, "<i>Hello world</i>"},
		{Span{Kind: CodeKind, Text: "Hello world"}, "<code>Hello world</code>"},
		{Span{Kind: LinkKind, Text: "Hello world", URL: "https://www.boot.dev"}, `<a href="https://www.boot.dev">Hello world</a>`},
		{Span{Kind: ImageKind, Text: "Hello world", URL: "https://www.boot.dev"}, `<img src="https://www.boot.dev" alt="Hello world"></img>`},
	}
	for _, test := range tests {
		n, err := test.span.Node()
		if err != nil {
			t.Errorf("%v.Node(): %v", test.span, err)
			continue
		}
		if n.Kind() != LeafNode {
			t.Errorf("%v.Node().Kind() = %v; want %v", test.span, n.Kind(), LeafNode)
		}
		if got, err := n.Render(); got != test.want || err != nil {
			t.Errorf("%v.Node().Render() = %q, %v; want %q, <nil>", test.span, got, err, test.want)
		}
	}
}

func TestSpanNodeImageProps(t *testing.T) {
	n, err := Span{Kind: ImageKind, Text: "alt text", URL: "a.png"}.Node()
	if err != nil {
		t.Fatal(err)
	}
	want := []html.Attribute{{Key: "src", Val: "a.png"}, {Key: "alt", Val: "alt text"}}
	got := n.Props()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Props() = %v; want %v", got, want)
	}
	if v, ok := n.Value(); v != "" || !ok {
		t.Errorf("Value() = %q, %t; want \"\", true", v, ok)
	}
}

func TestSpanNodeInvalidKind(t *testing.T) {
	for _, kind := range []SpanKind{0, ImageKind + 1} {
		span := Span{Kind: kind, Text: "x"}
		if n, err := span.Node(); !errors.Is(err, ErrInvalidSpanKind) {
			t.Errorf("%v.Node() = %v, %v; want _, %v", span, n, err, ErrInvalidSpanKind)
		}
	}
}
