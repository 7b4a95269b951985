package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/owlgraph/export"
	"github.com/c360studio/owlgraph/ntriples"
	"github.com/c360studio/owlgraph/translate"
)

func translateCmd(app *appState) *cobra.Command {
	var (
		format        string
		ontologyIRI   string
		outputPath    string
		failOnResidue bool
		comments      bool
	)

	cmd := &cobra.Command{
		Use:   "translate <pattern>...",
		Short: "Translate N-Triples documents to OWL axioms",
		Long: `Translate reads the matched N-Triples documents, reconstructs their OWL
axioms, and writes the combined output. Patterns support * and **
wildcards; a bare directory matches every .nt file beneath it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = app.cfg.Export.Format
			}
			if ontologyIRI == "" {
				ontologyIRI = app.cfg.Export.OntologyIRI
			}
			failOnResidue = failOnResidue || app.cfg.Translate.FailOnResidue
			comments = comments || app.cfg.Export.DiagnosticComments

			paths, err := resolveInputs(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no documents match the given patterns")
			}

			out := io.Writer(os.Stdout)
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			var opts []export.Option
			if ontologyIRI != "" {
				opts = append(opts, export.WithOntologyIRI(ontologyIRI))
			}
			if comments {
				opts = append(opts, export.WithDiagnosticComments())
			}
			writer := export.NewWriter(opts...)

			reader := app.newReader()
			residueTotal := 0
			for _, path := range paths {
				result, err := translateFile(app, reader, path)
				if err != nil {
					return err
				}
				residueTotal += len(result.Residue)

				if err := writer.Write(out, result, export.Format(format)); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}

			if failOnResidue && residueTotal > 0 {
				return fmt.Errorf("%d residue triples across %d documents", residueTotal, len(paths))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (functional, ntriples)")
	cmd.Flags().StringVar(&ontologyIRI, "ontology-iri", "", "IRI for the Ontology header")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&failOnResidue, "fail-on-residue", false, "Exit non-zero when triples are left unconsumed")
	cmd.Flags().BoolVar(&comments, "diagnostic-comments", false, "Include diagnostics as comments in the output")

	return cmd
}

// translateFile reads and translates one document, logging its diagnostics.
func translateFile(app *appState, reader *ntriples.Reader, path string) (*translate.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	store, parseErrs, err := reader.Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	for _, perr := range parseErrs {
		app.logger.Warn("Skipped malformed line", "path", path, "line", perr.Line, "error", perr.Message)
	}

	result := translate.TranslateDocument(store, translate.WithLogger(app.logger))

	for _, d := range result.Diagnostics {
		app.logger.Warn("Translation diagnostic", "path", path, "diagnostic", d.String())
	}
	app.logger.Info("Document translated",
		"path", path,
		"triples", store.Len(),
		"axioms", len(result.Axioms),
		"residue", len(result.Residue))

	if app.cfg.Translate.FailOnDiagnostics && len(result.Diagnostics) > 0 {
		return nil, fmt.Errorf("%s: %d diagnostics", path, len(result.Diagnostics))
	}
	return result, nil
}
