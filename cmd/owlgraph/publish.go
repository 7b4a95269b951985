package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/c360studio/owlgraph/stream"
)

func publishCmd(app *appState) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "publish <pattern>...",
		Short: "Translate documents and publish axiom batches to NATS",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" {
				subject = app.cfg.NATS.Subject
			}

			paths, err := resolveInputs(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no documents match the given patterns")
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			nc, err := connectNATS(ctx, app)
			if err != nil {
				return err
			}
			defer nc.Close(context.Background())

			metrics := stream.NewMetrics()
			if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
				app.logger.Warn("Failed to register metrics", "error", err)
			}
			publisher := stream.NewPublisher(nc, subject, metrics)
			reader := app.newReader()

			for _, path := range paths {
				start := time.Now()
				result, err := translateFile(app, reader, path)
				if err != nil {
					return err
				}
				metrics.RecordTranslation("file", time.Since(start))

				documentID := filepath.Base(path)
				if err := publisher.Publish(ctx, documentID, result); err != nil {
					return err
				}
				app.logger.Info("Published axiom batch",
					"document", documentID,
					"subject", subject,
					"axioms", len(result.Axioms))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject to publish batches to")

	return cmd
}

// connectNATS dials the configured NATS server and waits for the connection.
func connectNATS(ctx context.Context, app *appState) (*natsclient.Client, error) {
	nc, err := natsclient.NewClient(app.cfg.NATS.URL)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}
	if err := nc.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", app.cfg.NATS.URL, err)
	}
	app.logger.Info("Connected to NATS", "url", app.cfg.NATS.URL)
	return nc, nil
}
