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


// sitemark builds a static HTML site from a directory of Markdown documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"zombiezen.com/go/sitemark/site"
)

var rootCmd = &cobra.Command{
	Use:               "sitemark",
	Short:             "sitemark - static site generator for a small Markdown dialect",
	PersistentPreRunE: before,
	SilenceUsage:      true,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "render the content directory into the output directory",
	Long: `Copies the static directory into the output directory,
then renders every .md file under the content directory
into an .html file at the same relative path using the page template.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd.Flags(), &cfg, opts.overrides)
		return build(cmd.Context(), cfg, logrus.StandardLogger())
	},
}

type cliOptions struct {
	logLevel   string
	configPath string
	overrides  Config
}

// Default options. Overwritten by flags.
var opts = cliOptions{
	logLevel:  "info",
	overrides: defaultConfig(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log messages including and over the specified level: debug, info, warn, error, fatal, panic")

	f := buildCmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration `file`")
	f.StringVar(&opts.overrides.Content, "content", opts.overrides.Content, "Directory of Markdown documents")
	f.StringVar(&opts.overrides.Static, "static", opts.overrides.Static, "Directory of static assets")
	f.StringVar(&opts.overrides.Output, "output", opts.overrides.Output, "Output directory")
	f.StringVar(&opts.overrides.Template, "template", opts.overrides.Template, "Page template `file`")
	f.BoolVar(&opts.overrides.Clean, "clean", opts.overrides.Clean, "Remove the output directory before building")

	rootCmd.AddCommand(buildCmd)
}

func before(cmd *cobra.Command, args []string) error {
	if opts.logLevel == "" {
		opts.logLevel = "info"
	}
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

// applyFlags copies the explicitly set flags from overrides into cfg.
func applyFlags(flags *pflag.FlagSet, cfg *Config, overrides Config) {
	if flags.Changed("content") {
		cfg.Content = overrides.Content
	}
	if flags.Changed("static") {
		cfg.Static = overrides.Static
	}
	if flags.Changed("output") {
		cfg.Output = overrides.Output
	}
	if flags.Changed("template") {
		cfg.Template = overrides.Template
	}
	if flags.Changed("clean") {
		cfg.Clean = overrides.Clean
	}
}

func build(ctx context.Context, cfg Config, log logrus.FieldLogger) error {
	template, err := os.ReadFile(cfg.Template)
	if err != nil {
		return fmt.Errorf("build: read template: %w", err)
	}
	if cfg.Clean {
		log.WithField("dest", cfg.Output).Debug("Removing output directory")
		if err := os.RemoveAll(cfg.Output); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if cfg.Static != "" {
		if info, err := os.Stat(cfg.Static); errors.Is(err, fs.ErrNotExist) {
			log.WithField("path", cfg.Static).Debug("No static directory")
		} else if err != nil {
			return fmt.Errorf("build: %w", err)
		} else if !info.IsDir() {
			return fmt.Errorf("build: static path %s is not a directory", cfg.Static)
		} else if err := site.CopyTree(ctx, os.DirFS(cfg.Static), cfg.Output, log); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	}

	g := &site.Generator{
		Template: string(template),
		Log:      log,
	}
	if err := g.Generate(ctx, os.DirFS(cfg.Content), cfg.Output); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
