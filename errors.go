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

import "errors"

// Errors returned by the parser and renderer.
// Returned errors wrap one of these values with additional context,
// so callers should compare using [errors.Is].
var (
	// ErrUnpairedDelimiter indicates that an emphasis or code delimiter
	// appears an odd number of times in a run of text.
	ErrUnpairedDelimiter = errors.New("unpaired delimiter")
	// ErrInvalidSpanKind indicates a [Span] with an unrecognized [SpanKind].
	ErrInvalidSpanKind = errors.New("invalid span kind")
	// ErrMissingValue indicates a leaf node without a value.
	ErrMissingValue = errors.New("leaf node has no value")
	// ErrMissingTag indicates a parent node without a tag.
	ErrMissingTag = errors.New("parent node has no tag")
	// ErrEmptyChildren indicates a parent node without children.
	ErrEmptyChildren = errors.New("parent node has no children")
	// ErrNoTitle indicates a document without a level 1 heading.
	ErrNoTitle = errors.New("no title found")
)
