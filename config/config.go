// Package config provides configuration loading and management for owlgraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete owlgraph configuration
type Config struct {
	Document  DocumentConfig  `yaml:"document"`
	Translate TranslateConfig `yaml:"translate"`
	Export    ExportConfig    `yaml:"export"`
	NATS      NATSConfig      `yaml:"nats"`
}

// DocumentConfig configures how input documents are interpreted
type DocumentConfig struct {
	// BaseIRI resolves relative references in input documents
	BaseIRI string `yaml:"base_iri"`
	// Prefixes maps extra prefix labels to namespace IRIs for display
	Prefixes map[string]string `yaml:"prefixes"`
}

// TranslateConfig configures translation behavior
type TranslateConfig struct {
	// FailOnResidue treats a non-empty residue as an error exit
	FailOnResidue bool `yaml:"fail_on_residue"`
	// FailOnDiagnostics treats any diagnostic as an error exit
	FailOnDiagnostics bool `yaml:"fail_on_diagnostics"`
}

// ExportConfig configures output rendering
type ExportConfig struct {
	// Format is the output serialization ("functional" or "ntriples")
	Format string `yaml:"format"`
	// OntologyIRI is written in the Ontology header when set
	OntologyIRI string `yaml:"ontology_iri"`
	// DiagnosticComments includes diagnostics as comments in the output
	DiagnosticComments bool `yaml:"diagnostic_comments"`
}

// NATSConfig configures the NATS connection for stream publishing
type NATSConfig struct {
	// URL is the NATS server URL
	URL string `yaml:"url"`
	// Stream is the JetStream stream name consumed by subscribers
	Stream string `yaml:"stream"`
	// Subject is the subject axiom batches are published to
	Subject string `yaml:"subject"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{
			BaseIRI:  "",
			Prefixes: nil,
		},
		Translate: TranslateConfig{
			FailOnResidue:     false,
			FailOnDiagnostics: false,
		},
		Export: ExportConfig{
			Format: "functional",
		},
		NATS: NATSConfig{
			URL:     "nats://localhost:4222",
			Stream:  "AXIOMS",
			Subject: "owlgraph.axioms",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Export.Format {
	case "functional", "ntriples":
	default:
		return fmt.Errorf("export.format must be \"functional\" or \"ntriples\", got %q", c.Export.Format)
	}
	if c.NATS.Stream == "" {
		return fmt.Errorf("nats.stream is required")
	}
	if c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Document
	if other.Document.BaseIRI != "" {
		c.Document.BaseIRI = other.Document.BaseIRI
	}
	if len(other.Document.Prefixes) > 0 {
		if c.Document.Prefixes == nil {
			c.Document.Prefixes = make(map[string]string, len(other.Document.Prefixes))
		}
		for label, ns := range other.Document.Prefixes {
			c.Document.Prefixes[label] = ns
		}
	}

	// Translate
	if other.Translate.FailOnResidue {
		c.Translate.FailOnResidue = true
	}
	if other.Translate.FailOnDiagnostics {
		c.Translate.FailOnDiagnostics = true
	}

	// Export
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.OntologyIRI != "" {
		c.Export.OntologyIRI = other.Export.OntologyIRI
	}
	if other.Export.DiagnosticComments {
		c.Export.DiagnosticComments = true
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Stream != "" {
		c.NATS.Stream = other.NATS.Stream
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
}
