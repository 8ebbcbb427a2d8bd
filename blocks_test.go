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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitBlocks(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     []string
	}{
		{
			name: "Document",
			document: "# This is a H1 heading\n\n" +
				"This is a paragraph of text. It has some **bold** and *italic* words inside of it.\n\n" +
				"* This is the first list item in a list block\n" +
				"* This is a list item\n" +
				"* This is another list item",
			want: []string{
				"# This is a H1 heading",
				"This is a paragraph of text. It has some **bold** and *italic* words inside of it.",
				"* This is the first list item in a list block\n* This is a list item\n* This is another list item",
			},
		},
		{
			name:     "Empty",
			document: "",
			want:     []string{""},
		},
		{
			name:     "ThreeNewlines",
			document: "a\n\n\nb",
			want:     []string{"a", "\nb"},
		},
		{
			name:     "FourNewlines",
			document: "a\n\n\n\nb",
			want:     []string{"a", "", "b"},
		},
		{
			name:     "NoTrimming",
			document: "  a  \n\n b\n",
			want:     []string{"  a  ", " b\n"},
		},
		{
			name:     "CRLFNotSeparator",
			document: "a\r\n\r\nb",
			want:     []string{"a\r\n\r\nb"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := SplitBlocks(test.document)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("SplitBlocks(%q) (-want +got):\n%s", test.document, diff)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		block string
		want  BlockKind
	}{
		{"This is a normal\nparagraph with some\nnew linesof text.\n", ParagraphKind},
		{"", ParagraphKind},
		{"# This is a H1 heading", Heading1Kind},
		{"## This is a H2 heading", Heading2Kind},
		{"### H3", Heading3Kind},
		{"#### H4", Heading4Kind},
		{"##### H5", Heading5Kind},
		{"###### H6", Heading6Kind},
		{"####### Too deep", ParagraphKind},
		{"#NoSpace", ParagraphKind},
		{"#", ParagraphKind},
		{"# ", Heading1Kind},
		{"```This is a code block```", CodeBlockKind},
		{"```\nfunc main() {}\n```", CodeBlockKind},
		{"```", CodeBlockKind},
		{"```\nunterminated", ParagraphKind},
		{"# heading ```", Heading1Kind},
		{"> quote", QuoteKind},
		{"> line one\n>line two", QuoteKind},
		{"> line one\nline two", ParagraphKind},
		{"* This is the first list item in a list block\n* This is a list item\n* This is another list item", UnorderedListKind},
		{"- a\n- b", UnorderedListKind},
		{"- a\n* b", UnorderedListKind},
		{"-a", ParagraphKind},
		{"- a\n", ParagraphKind},
		{"1. This is the first list item in a list block\n2. This is a list item\n3. This is another list item", OrderedListKind},
		{"1. one", OrderedListKind},
		{"2. two", ParagraphKind},
		{"1. one\n3. three", ParagraphKind},
		{"1.one", ParagraphKind},
		{"1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j", OrderedListKind},
	}
	for _, test := range tests {
		if got := Classify(test.block); got != test.want {
			t.Errorf("Classify(%q) = %v; want %v", test.block, got, test.want)
		}
	}
}

func TestBlockKindHeadingLevel(t *testing.T) {
	tests := []struct {
		kind BlockKind
		want int
	}{
		{ParagraphKind, 0},
		{Heading1Kind, 1},
		{Heading3Kind, 3},
		{Heading6Kind, 6},
		{CodeBlockKind, 0},
		{OrderedListKind, 0},
		{0, 0},
	}
	for _, test := range tests {
		if got := test.kind.HeadingLevel(); got != test.want {
			t.Errorf("%v.HeadingLevel() = %d; want %d", test.kind, got, test.want)
		}
	}
}

func TestBlockKindString(t *testing.T) {
	if got, want := UnorderedListKind.String(), "UnorderedListKind"; got != want {
		t.Errorf("UnorderedListKind.String() = %q; want %q", got, want)
	}
	if got, want := BlockKind(99).String(), "BlockKind(99)"; got != want {
		t.Errorf("BlockKind(99).String() = %q; want %q", got, want)
	}
}
