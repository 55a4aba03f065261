package batcher

import (
	"context"
	"time"
)

// item is one client's pending unit of work: an ordered, non-empty list of
// inputs plus a single-use reply channel. Its reply handle is owned
// exclusively by the coordinator goroutine from admission to reply.
type item struct {
	ctx       context.Context
	inputs    []string
	arrivedAt time.Time
	reply     chan replyMsg
}

type replyMsg struct {
	embeddings [][]float64
	err        error
}

// flushUnit is a snapshot of items detached from the pending queue plus the
// flat input list formed by concatenating their inputs in queue order.
type flushUnit struct {
	items   []*item
	flat    []string
	offsets []int
}

func newFlushUnit(items []*item) flushUnit {
	offsets := make([]int, len(items))
	flat := make([]string, 0)
	for i, it := range items {
		offsets[i] = len(flat)
		flat = append(flat, it.inputs...)
	}
	return flushUnit{items: items, flat: flat, offsets: offsets}
}
