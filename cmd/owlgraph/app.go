package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/owlgraph/config"
	"github.com/c360studio/owlgraph/ntriples"
	"github.com/c360studio/owlgraph/vocabulary"
)

// appState carries the flags and loaded configuration shared by all
// subcommands.
type appState struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// setup configures logging and loads the layered configuration.
func (a *appState) setup() error {
	level := slog.LevelInfo
	switch strings.ToLower(a.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	var cfg *config.Config
	if a.configPath != "" {
		loaded, err := config.LoadFromFile(a.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		loaded, err := config.NewLoader(a.logger).Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	// Register configured prefixes so diagnostics and output show CURIEs
	for label, ns := range cfg.Document.Prefixes {
		vocabulary.RegisterPrefix(label, ns)
	}

	return nil
}

// newReader builds an N-Triples reader honoring the document configuration.
func (a *appState) newReader() *ntriples.Reader {
	opts := []ntriples.Option{ntriples.WithLogger(a.logger)}
	if a.cfg.Document.BaseIRI != "" {
		opts = append(opts, ntriples.WithBaseIRI(a.cfg.Document.BaseIRI))
	}
	return ntriples.NewReader(opts...)
}

// resolveInputs expands glob patterns to .nt document paths. Patterns support
// single-level (*) and recursive (**) wildcards.
func resolveInputs(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolvePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	sort.Strings(resolved)
	return resolved, nil
}

func resolvePattern(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			// A bare directory means every document under it
			return resolvePattern(filepath.Join(absPath, "**", "*.nt"))
		}
		return []string{absPath}, nil
	}

	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		absPattern = filepath.Join(cwd, pattern)
	}

	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if !info.IsDir() && strings.HasSuffix(match, ".nt") {
			files = append(files, match)
		}
	}
	return files, nil
}
