package batcher

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startFlushSpan starts a span for one upstream flush call, linked to the
// trace context of every originating request folded into this flush unit
// so a slow upstream call is attributable to the batch that triggered it.
func (b *Batcher) startFlushSpan(unit flushUnit, trigger string) (context.Context, trace.Span) {
	links := make([]trace.Link, 0, len(unit.items))
	for _, it := range unit.items {
		sc := trace.SpanContextFromContext(it.ctx)
		if sc.IsValid() {
			links = append(links, trace.Link{SpanContext: sc})
		}
	}

	ctx, span := b.tracer.Start(context.Background(), "batcher.flush",
		trace.WithLinks(links...),
		trace.WithAttributes(
			attribute.String("batch.trigger", trigger),
			attribute.Int("batch.input_count", len(unit.flat)),
			attribute.Int("batch.item_count", len(unit.items)),
		),
	)
	return ctx, span
}
