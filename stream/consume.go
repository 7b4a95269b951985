package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/c360studio/semstreams/natsclient"
	"github.com/nats-io/nats.go/jetstream"
)

// BatchHandler processes one decoded axiom batch.
type BatchHandler func(batch *AxiomBatch)

// Consumer decodes axiom batches off a JetStream stream.
type Consumer struct {
	nc      *natsclient.Client
	stream  string
	subject string
	logger  *slog.Logger
	metrics *Metrics
}

// NewConsumer creates a consumer for the given stream and subject.
func NewConsumer(nc *natsclient.Client, streamName, subject string, logger *slog.Logger, metrics *Metrics) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{nc: nc, stream: streamName, subject: subject, logger: logger, metrics: metrics}
}

// Run consumes batches until the context is canceled. Undecodable messages
// are logged and dropped rather than stalling the stream.
func (c *Consumer) Run(ctx context.Context, handler BatchHandler) error {
	if c.nc == nil {
		return fmt.Errorf("no NATS client configured")
	}

	return c.nc.ConsumeStream(ctx, c.stream, c.subject, func(msg jetstream.Msg) {
		c.handleMessage(msg, handler)
	})
}

func (c *Consumer) handleMessage(msg jetstream.Msg, handler BatchHandler) {
	var batch AxiomBatch
	if err := json.Unmarshal(msg.Data(), &batch); err != nil {
		c.logger.Warn("dropping undecodable batch", "subject", c.subject, "error", err)
		if c.metrics != nil {
			c.metrics.RecordConsume(c.subject, "undecodable")
		}
		return
	}
	if err := batch.Validate(); err != nil {
		c.logger.Warn("dropping invalid batch", "subject", c.subject, "error", err)
		if c.metrics != nil {
			c.metrics.RecordConsume(c.subject, "invalid")
		}
		return
	}

	if c.metrics != nil {
		c.metrics.RecordConsume(c.subject, "ok")
	}
	handler(&batch)
}
