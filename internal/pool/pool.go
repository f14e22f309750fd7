// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package pool runs a bounded worker pool over a stream of items while
// guaranteeing the results are delivered to the consumer in the same
// order the items were produced, the same producer/workers/collector
// shape used elsewhere in this codebase's ancestry for XML dump
// processing.
package pool

import "sync"

// sequenced pairs a result with its position in the input stream, so the
// collector can reorder worker output that completes out of sequence.
type sequenced[R any] struct {
	seq int
	val R
}

// Run reads items from next until it reports no more are available,
// applies fn to each item on one of workers goroutines, and calls emit
// with each result in input order. Run blocks until every item has been
// processed and emitted.
//
// With workers == 1, items are still processed on a separate goroutine
// but fn never runs concurrently with itself, and results are already in
// order; with workers > 1, fn must not share mutable state across calls.
func Run[T, R any](workers int, next func() (T, bool), fn func(T) R, emit func(R)) {
	if workers < 1 {
		workers = 1
	}

	type job struct {
		seq  int
		item T
	}

	jobs := make(chan job, workers)
	results := make(chan sequenced[R], workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- sequenced[R]{seq: j.seq, val: fn(j.item)}
			}
		}()
	}

	go func() {
		seq := 0
		for {
			item, ok := next()
			if !ok {
				break
			}
			jobs <- job{seq: seq, item: item}
			seq++
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	pending := make(map[int]R)
	wantSeq := 0
	for r := range results {
		pending[r.seq] = r.val
		for {
			v, ok := pending[wantSeq]
			if !ok {
				break
			}
			emit(v)
			delete(pending, wantSeq)
			wantSeq++
		}
	}
}
