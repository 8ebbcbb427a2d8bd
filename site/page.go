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


// Package site builds a static HTML site from a tree of Markdown documents.
package site

import (
	"fmt"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/text/unicode/norm"
	"zombiezen.com/go/sitemark"
)

// Placeholders replaced in a page template.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

var lineEndings = bytereplacer.New(
	"\r\n", "\n",
	"\r", "\n",
)

// Normalize prepares raw document bytes for parsing:
// line endings become "\n", text is converted to Unicode NFC,
// and trailing line terminators are removed
// so the last block is not followed by an empty line.
func Normalize(src []byte) string {
	b := lineEndings.Replace(append([]byte(nil), src...))
	b = norm.NFC.Bytes(b)
	return strings.TrimRight(string(b), "\n")
}

// GeneratePage renders a Markdown document into a template,
// substituting [TitlePlaceholder] with the document's title
// and [ContentPlaceholder] with its HTML.
// The document must have a level 1 heading.
func GeneratePage(markdown, template string) (string, error) {
	title, err := sitemark.ExtractTitle(markdown)
	if err != nil {
		return "", fmt.Errorf("generate page: %w", err)
	}
	content, err := sitemark.RenderDocument(markdown)
	if err != nil {
		return "", fmt.Errorf("generate page: %w", err)
	}
	r := bytereplacer.New(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	)
	return string(r.Replace([]byte(template))), nil
}
