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


package site

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Extensions of source documents and generated pages.
const (
	DocumentExt = ".md"
	PageExt     = ".html"
)

// A Generator converts a directory of Markdown documents into HTML pages.
type Generator struct {
	// Template is the page template.
	// See [GeneratePage] for the placeholders it may contain.
	Template string
	// Log receives progress messages.
	// If Log is nil, messages are discarded.
	Log logrus.FieldLogger
}

// Generate mirrors the directory tree of src into dstRoot.
// Every file ending in [DocumentExt] is written as a page
// with the same relative path and [PageExt],
// and all other files are copied byte-for-byte.
// Generate stops at the first error.
func (g *Generator) Generate(ctx context.Context, src fs.FS, dstRoot string) error {
	log := loggerOrDiscard(g.Log)
	pages, copied := 0, 0
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := filepath.Join(dstRoot, filepath.FromSlash(p))
		switch {
		case d.IsDir():
			return os.MkdirAll(dst, 0o755)
		case path.Ext(p) == DocumentExt:
			dst = strings.TrimSuffix(dst, DocumentExt) + PageExt
			if err := g.generateFile(src, p, dst); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"path": p, "dest": dst}).Debug("Generated page")
			pages++
			return nil
		default:
			if err := copyFile(src, p, dst); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"path": p, "dest": dst}).Debug("Copied file")
			copied++
			return nil
		}
	})
	if err != nil {
		return fmt.Errorf("generate site: %w", err)
	}
	log.WithFields(logrus.Fields{"pages": pages, "copied": copied}).Info("Generated site")
	return nil
}

func (g *Generator) generateFile(src fs.FS, p, dst string) error {
	raw, err := fs.ReadFile(src, p)
	if err != nil {
		return err
	}
	page, err := GeneratePage(Normalize(raw), g.Template)
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	if err := os.WriteFile(dst, []byte(page), 0o644); err != nil {
		return err
	}
	return nil
}

// CopyTree copies every file in src to the same relative path under dstRoot,
// creating directories as needed.
func CopyTree(ctx context.Context, src fs.FS, dstRoot string, log logrus.FieldLogger) error {
	log = loggerOrDiscard(log)
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := filepath.Join(dstRoot, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if err := copyFile(src, p, dst); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"path": p, "dest": dst}).Debug("Copied file")
		return nil
	})
	if err != nil {
		return fmt.Errorf("copy tree: %w", err)
	}
	return nil
}

func copyFile(src fs.FS, p, dst string) (err error) {
	r, err := src.Open(p)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("copy %s: %w", p, err)
	}
	return nil
}

func loggerOrDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
