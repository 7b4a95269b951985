// Package main provides the owlgraph binary entry point.
// Owlgraph translates RDF triple graphs into OWL axioms.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "owlgraph"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	app := &appState{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "RDF graph to OWL axiom translator",
		Long: `Owlgraph reconstructs typed OWL axioms from RDF triple graphs.

It reads N-Triples documents, recognizes OWL constructs by their triple
patterns, and emits the axiom set together with diagnostics and the residue
of triples no construct claimed.

Translated documents can be written as functional-style syntax or published
to NATS JetStream for downstream consumers.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}

	cmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(translateCmd(app))
	cmd.AddCommand(watchCmd(app))
	cmd.AddCommand(publishCmd(app))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}
