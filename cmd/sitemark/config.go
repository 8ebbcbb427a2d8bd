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


package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the contents of a site configuration file.
type Config struct {
	// Content is the directory of Markdown documents.
	Content string `toml:"content"`
	// Static is the directory of assets copied verbatim into the output.
	// It is skipped if it does not exist.
	Static string `toml:"static"`
	// Output is the directory the site is written to.
	Output string `toml:"output"`
	// Template is the path to the page template.
	Template string `toml:"template"`
	// Clean removes the output directory before building.
	Clean bool `toml:"clean"`
}

func defaultConfig() Config {
	return Config{
		Content:  "content",
		Static:   "static",
		Output:   "public",
		Template: "template.html",
	}
}

// loadConfig reads a TOML configuration file.
// Fields the file does not set keep their defaults.
// An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err = parseConfig(string(contents))
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(contents string) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.Decode(contents, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"content", cfg.Content},
		{"output", cfg.Output},
		{"template", cfg.Template},
	} {
		if f.value == "" {
			return Config{}, fmt.Errorf("%s is empty", f.name)
		}
	}
	return cfg, nil
}
