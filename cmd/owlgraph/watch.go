package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/c360studio/owlgraph/stream"
	"github.com/c360studio/owlgraph/watch"
)

func watchCmd(app *appState) *cobra.Command {
	var (
		debounce    time.Duration
		publish     bool
		subject     string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and retranslate documents on change",
		Long: `Watch translates every .nt document under the directory, then monitors it
for changes and retranslates documents as they are created or modified.
With --publish each translation is also sent to NATS as an axiom batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := os.Stat(args[0])
			if err != nil {
				return fmt.Errorf("stat watch root: %w", err)
			}
			if !root.IsDir() {
				return fmt.Errorf("not a directory: %s", args[0])
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			metrics := stream.NewMetrics()
			if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
				app.logger.Warn("Failed to register metrics", "error", err)
			}
			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				go func() {
					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						app.logger.Error("Metrics server stopped", "error", err)
					}
				}()
				app.logger.Info("Serving metrics", "addr", metricsAddr)
			}

			var publisher *stream.Publisher
			if publish {
				if subject == "" {
					subject = app.cfg.NATS.Subject
				}
				nc, err := connectNATS(ctx, app)
				if err != nil {
					return err
				}
				defer nc.Close(context.Background())
				publisher = stream.NewPublisher(nc, subject, metrics)
			}

			watcher, err := watch.NewWatcher(watch.Config{
				Root:          args[0],
				DebounceDelay: debounce,
				Logger:        app.logger,
			})
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}

			// Initial pass over existing documents
			results, err := watcher.TranslateAll(ctx)
			if err != nil {
				return fmt.Errorf("initial translation: %w", err)
			}
			for path, result := range results {
				app.logger.Info("Document translated",
					"path", path,
					"axioms", len(result.Axioms),
					"residue", len(result.Residue))
				if publisher != nil {
					if err := publisher.Publish(ctx, path, result); err != nil {
						app.logger.Error("Failed to publish batch", "path", path, "error", err)
					}
				}
			}

			if err := watcher.Start(ctx); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}

			for {
				select {
				case <-ctx.Done():
					return watcher.Stop()

				case event := <-watcher.Events():
					if event.Error != nil {
						app.logger.Error("Document failed", "path", event.Path, "error", event.Error)
						continue
					}
					if event.Operation == watch.OpDelete {
						app.logger.Info("Document removed", "path", event.Path)
						continue
					}

					app.logger.Info("Document retranslated",
						"path", event.Path,
						"op", event.Operation,
						"axioms", len(event.Result.Axioms),
						"residue", len(event.Result.Residue))

					if publisher != nil {
						if err := publisher.Publish(ctx, event.Path, event.Result); err != nil {
							app.logger.Error("Failed to publish batch", "path", event.Path, "error", err)
						}
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "Delay before processing accumulated changes")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish each translation to NATS")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject to publish batches to")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on (disabled when empty)")

	return cmd
}
