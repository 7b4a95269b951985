// Package stream publishes translation results to NATS JetStream and consumes
// them on the far side, so downstream reasoners receive axiom batches without
// re-parsing documents.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/owlgraph/translate"
)

// AxiomBatch is the wire format for one translated document.
type AxiomBatch struct {
	DocumentID   string             `json:"document_id"`
	Axioms       []string           `json:"axioms"`
	ResidueCount int                `json:"residue_count"`
	Diagnostics  []DiagnosticRecord `json:"diagnostics,omitempty"`
	TranslatedAt time.Time          `json:"translated_at"`
}

// DiagnosticRecord is the serializable form of a translation diagnostic.
type DiagnosticRecord struct {
	Kind    string `json:"kind"`
	Node    string `json:"node,omitempty"`
	Message string `json:"message"`
}

// Validate checks the batch is well formed for publishing.
func (b *AxiomBatch) Validate() error {
	if b.DocumentID == "" {
		return fmt.Errorf("document ID is required")
	}
	return nil
}

// NewAxiomBatch builds the wire message for a result.
func NewAxiomBatch(documentID string, result *translate.Result) *AxiomBatch {
	axioms := make([]string, len(result.Axioms))
	for i, ax := range result.Axioms {
		axioms[i] = ax.String()
	}

	var diags []DiagnosticRecord
	for _, d := range result.Diagnostics {
		rec := DiagnosticRecord{Kind: string(d.Kind), Message: d.Message}
		if d.Node != nil {
			rec.Node = d.Node.String()
		}
		diags = append(diags, rec)
	}

	return &AxiomBatch{
		DocumentID:   documentID,
		Axioms:       axioms,
		ResidueCount: len(result.Residue),
		Diagnostics:  diags,
		TranslatedAt: time.Now().UTC(),
	}
}

// Publisher publishes axiom batches to a JetStream subject.
type Publisher struct {
	nc      *natsclient.Client
	subject string
	metrics *Metrics
}

// NewPublisher creates a publisher on the given subject. A nil metrics
// argument disables recording.
func NewPublisher(nc *natsclient.Client, subject string, metrics *Metrics) *Publisher {
	return &Publisher{nc: nc, subject: subject, metrics: metrics}
}

// Publish sends one translated document. A nil client skips publishing so
// callers degrade gracefully when NATS is not configured.
func (p *Publisher) Publish(ctx context.Context, documentID string, result *translate.Result) error {
	if p.nc == nil {
		return nil
	}

	batch := NewAxiomBatch(documentID, result)
	if err := batch.Validate(); err != nil {
		return fmt.Errorf("axiom batch: %w", err)
	}

	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal axiom batch: %w", err)
	}

	if err := p.nc.PublishToStream(ctx, p.subject, data); err != nil {
		if p.metrics != nil {
			p.metrics.RecordError("publish")
		}
		return fmt.Errorf("publish axiom batch: %w", err)
	}

	if p.metrics != nil {
		p.metrics.RecordPublish(p.subject, len(batch.Axioms))
	}
	return nil
}
