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
	"regexp"
	"strings"
)

// delimiterPasses is the order in which delimiter pairs are split.
// Bold must precede italic so that "**" is not read as two italic delimiters.
// Triple backticks precede single backticks
// so that fenced code keeps its fences out of the single backtick pass.
var delimiterPasses = []struct {
	delim string
	kind  SpanKind
}{
	{"**", BoldKind},
	{"*", ItalicKind},
	{"```", CodeKind},
	{"`", CodeKind},
}

var (
	imageRE = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)`)
	linkRE  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

// Tokenize splits a run of text into inline spans.
// Only [PlainKind] spans are examined by each pass,
// so text already classified by an earlier pass is never re-split.
// Tokenize returns an error wrapping [ErrUnpairedDelimiter]
// if a delimiter appears an odd number of times in a run of plain text.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{{Kind: PlainKind, Text: text}}
	for _, pass := range delimiterPasses {
		var err error
		spans, err = SplitDelimiter(spans, pass.delim, pass.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}

// SplitDelimiter splits each plain span on pairs of delim,
// marking the text between each pair with the given kind.
// The fields alternate between plain and kind, starting with plain,
// so a span that begins or ends with a delimiter
// produces an empty plain span at that end.
//
// An occurrence of delim only counts as a delimiter
// if it is not immediately preceded or followed by
// any of the bytes in delim.
// This keeps "*" from matching inside "**"
// and rejects runs like "****".
func SplitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	var result []Span
	for _, span := range spans {
		if span.Kind != PlainKind {
			result = append(result, span)
			continue
		}
		fields := splitOnDelimiter(span.Text, delim)
		if len(fields)%2 == 0 {
			return nil, fmt.Errorf("split %q on %q: %w", span.Text, delim, ErrUnpairedDelimiter)
		}
		for i, f := range fields {
			if i%2 == 0 {
				result = append(result, Span{Kind: PlainKind, Text: f})
			} else {
				result = append(result, Span{Kind: kind, Text: f})
			}
		}
	}
	return result, nil
}

// splitOnDelimiter slices s around every matching occurrence of delim.
func splitOnDelimiter(s, delim string) []string {
	var fields []string
	start := 0
	for i := 0; i+len(delim) <= len(s); {
		if !isDelimiterAt(s, i, delim) {
			i++
			continue
		}
		fields = append(fields, s[start:i])
		i += len(delim)
		start = i
	}
	return append(fields, s[start:])
}

func isDelimiterAt(s string, i int, delim string) bool {
	if !strings.HasPrefix(s[i:], delim) {
		return false
	}
	if i > 0 && strings.IndexByte(delim, s[i-1]) >= 0 {
		return false
	}
	if end := i + len(delim); end < len(s) && strings.IndexByte(delim, s[end]) >= 0 {
		return false
	}
	return true
}

// SplitImages extracts ![alt](url) images from each plain span.
// A span with k images becomes 2k+1 spans,
// beginning and ending with a (possibly empty) plain span.
func SplitImages(spans []Span) []Span {
	return splitPattern(spans, imageRE, ImageKind)
}

// SplitLinks extracts [text](url) links from each plain span.
// Images must be extracted first,
// otherwise an image is read as a link preceded by "!".
func SplitLinks(spans []Span) []Span {
	return splitPattern(spans, linkRE, LinkKind)
}

func splitPattern(spans []Span, re *regexp.Regexp, kind SpanKind) []Span {
	var result []Span
	for _, span := range spans {
		if span.Kind != PlainKind {
			result = append(result, span)
			continue
		}
		matches := re.FindAllStringSubmatchIndex(span.Text, -1)
		if len(matches) == 0 {
			result = append(result, span)
			continue
		}
		prev := 0
		for _, m := range matches {
			result = append(result,
				Span{Kind: PlainKind, Text: span.Text[prev:m[0]]},
				Span{Kind: kind, Text: span.Text[m[2]:m[3]], URL: span.Text[m[4]:m[5]]},
			)
			prev = m[1]
		}
		result = append(result, Span{Kind: PlainKind, Text: span.Text[prev:]})
	}
	return result
}
