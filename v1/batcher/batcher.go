package batcher

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/embed-batch-proxy/v1/config"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/logger"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/metrics"
	"github.com/Aleph-Alpha/embed-batch-proxy/v1/upstream"
)

// Batcher is the auto-batching coordinator. All exported methods are safe
// to call from any number of goroutines; the pending queue itself is owned
// exclusively by the goroutine running Run.
type Batcher struct {
	cfg      *config.Config
	upstream upstream.Client
	metrics  metrics.Collector
	log      *logger.Logger
	tracer   trace.Tracer

	submissionCh chan *item
	stopped      chan struct{}
	running      atomic.Bool

	// coordinator-owned state, touched only from the Run goroutine.
	queue      []*item
	queuedSum  int
	timer      *time.Timer
	deadlineCh <-chan time.Time
}

// New constructs a Batcher. Run must be called exactly once, typically from
// v1/app's lifecycle hook, before Submit is used.
func New(cfg *config.Config, upstreamClient upstream.Client, collector metrics.Collector, log *logger.Logger, tracer trace.Tracer) *Batcher {
	return &Batcher{
		cfg:          cfg,
		upstream:     upstreamClient,
		metrics:      collector,
		log:          log,
		tracer:       tracer,
		submissionCh: make(chan *item, cfg.SubmissionQueueCapacity()),
		stopped:      make(chan struct{}),
	}
}

// Running reports whether the coordinator goroutine is currently accepting
// admissions. Backs the /healthz liveness probe.
func (b *Batcher) Running() bool {
	return b.running.Load()
}

// Submit enqueues inputs and blocks until the batch containing them has
// been answered by the upstream, the caller's context is cancelled, or the
// coordinator becomes unavailable. arrivedAt optionally overrides the
// arrival timestamp used to compute the deadline (defaults to now); it
// exists so tests can exercise elapsed-time-aware deadlines precisely.
func (b *Batcher) Submit(ctx context.Context, inputs []string, arrivedAt ...time.Time) ([][]float64, error) {
	at := time.Now()
	if len(arrivedAt) > 0 {
		at = arrivedAt[0]
	}

	it := &item{
		ctx:       ctx,
		inputs:    inputs,
		arrivedAt: at,
		reply:     make(chan replyMsg, 1),
	}

	select {
	case <-b.stopped:
		return nil, ErrBatcherUnavailable
	default:
	}

	select {
	case b.submissionCh <- it:
	default:
		return nil, ErrOverloaded
	}

	select {
	case r := <-it.reply:
		return r.embeddings, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.stopped:
		return nil, ErrBatcherUnavailable
	}
}

// Run is the coordinator goroutine. It owns the pending queue and the
// deadline timer exclusively until ctx is cancelled, at which point it
// flushes any remaining queue, waits for in-flight upstream calls to
// finish, and returns.
func (b *Batcher) Run(ctx context.Context) error {
	b.running.Store(true)
	defer func() {
		b.running.Store(false)
		close(b.stopped)
	}()

	eg := &errgroup.Group{}

	for {
		select {
		case it := <-b.submissionCh:
			b.admit(eg, it)

		case <-b.deadlineCh:
			b.log.Debug("deadline fired", nil, nil)
			b.flush(eg, "deadline")

		case <-ctx.Done():
			b.running.Store(false)
			b.flush(eg, "shutdown")
			return eg.Wait()
		}
	}
}

func (b *Batcher) admit(eg *errgroup.Group, it *item) {
	size := len(it.inputs)

	if size > b.cfg.MaxBatchSize && b.cfg.OversizePolicy == config.OversizeReject {
		deliver(it, nil, ErrOversizeRejected)
		return
	}

	if len(b.queue) == 0 {
		b.enqueue(it)
		b.armDeadline(it.arrivedAt)
	} else if b.queuedSum+size <= b.cfg.MaxBatchSize {
		b.enqueue(it)
	} else {
		// Oversize/overflow trigger: flush the current queue synchronously
		// first, then start a fresh batch with this item.
		b.flush(eg, "oversize")
		b.enqueue(it)
		b.armDeadline(it.arrivedAt)
	}

	if b.queuedSum >= b.cfg.MaxBatchSize {
		b.flush(eg, "size")
	}

	b.metrics.SetQueueDepth(b.queuedSum)
}

func (b *Batcher) enqueue(it *item) {
	b.queue = append(b.queue, it)
	b.queuedSum += len(it.inputs)
}

func (b *Batcher) armDeadline(arrivedAt time.Time) {
	elapsed := time.Since(arrivedAt)
	remaining := b.cfg.MaxWaitTime - elapsed
	if remaining < 0 {
		remaining = 0
	}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.NewTimer(remaining)
	b.deadlineCh = b.timer.C
}

func (b *Batcher) disarmDeadline() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.deadlineCh = nil
}

// flush detaches the pending queue and hands it to a tracked goroutine so
// the upstream call runs concurrently with further admissions into a fresh
// queue.
func (b *Batcher) flush(eg *errgroup.Group, trigger string) {
	if len(b.queue) == 0 {
		return
	}

	unit := newFlushUnit(b.queue)
	b.queue = nil
	b.queuedSum = 0
	b.disarmDeadline()

	b.metrics.SetQueueDepth(0)
	b.metrics.ObserveBatch(trigger, len(unit.flat))
	b.metrics.IncInFlightFlushes()

	eg.Go(func() error {
		defer b.metrics.DecInFlightFlushes()
		b.dispatch(unit, trigger)
		return nil
	})
}

func (b *Batcher) dispatch(unit flushUnit, trigger string) {
	ctx, span := b.startFlushSpan(unit, trigger)
	defer span.End()

	start := time.Now()
	embeddings, err := b.upstream.Embed(ctx, unit.flat)
	b.metrics.RecordUpstreamDuration(start)

	if err != nil {
		b.metrics.IncUpstreamError(upstreamErrorKind(err))
		b.log.ErrorWithContext(ctx, "upstream flush failed", err, logger.Fields{
			"trigger":    trigger,
			"batch_size": len(unit.flat),
			"items":      len(unit.items),
		})
		deliverError(unit.items, &UpstreamError{Err: err})
		return
	}

	if len(embeddings) != len(unit.flat) {
		shapeErr := &UpstreamError{Err: fmt.Errorf("expected %d embeddings, got %d", len(unit.flat), len(embeddings))}
		b.metrics.IncUpstreamError("shape_mismatch")
		b.log.ErrorWithContext(ctx, "upstream flush failed", shapeErr, logger.Fields{
			"trigger": trigger, "batch_size": len(unit.flat),
		})
		deliverError(unit.items, shapeErr)
		return
	}

	b.log.InfoWithContext(ctx, "flush succeeded", nil, logger.Fields{
		"trigger": trigger, "batch_size": len(unit.flat), "items": len(unit.items),
	})

	for i, it := range unit.items {
		start := unit.offsets[i]
		end := start + len(it.inputs)
		deliver(it, embeddings[start:end], nil)
	}
}

func deliver(it *item, embeddings [][]float64, err error) {
	select {
	case it.reply <- replyMsg{embeddings: embeddings, err: err}:
	default:
	}
}

func deliverError(items []*item, err error) {
	for _, it := range items {
		deliver(it, nil, err)
	}
}

func upstreamErrorKind(err error) string {
	switch {
	case upstream.IsTransport(err):
		return "transport"
	case upstream.IsHTTPStatus(err):
		return "http_status"
	case upstream.IsDecode(err):
		return "decode"
	case upstream.IsShapeMismatch(err):
		return "shape_mismatch"
	default:
		return "unknown"
	}
}
