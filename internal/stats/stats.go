// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package stats holds the run counters surfaced at the end of an
// extraction run.
package stats

import (
	"fmt"
	"sync/atomic"
)

// Run accumulates counters across a single invocation of the extractor.
// Every field is safe to increment concurrently from multiple worker
// goroutines.
type Run struct {
	PagesSeen             int64
	PagesEmitted          int64
	PagesSkippedNamespace int64
	PagesSkippedEmpty     int64
	PagesSkippedRedirect  int64
}

func (r *Run) IncSeen()             { atomic.AddInt64(&r.PagesSeen, 1) }
func (r *Run) IncEmitted()          { atomic.AddInt64(&r.PagesEmitted, 1) }
func (r *Run) IncSkippedNamespace() { atomic.AddInt64(&r.PagesSkippedNamespace, 1) }
func (r *Run) IncSkippedEmpty()     { atomic.AddInt64(&r.PagesSkippedEmpty, 1) }
func (r *Run) IncSkippedRedirect()  { atomic.AddInt64(&r.PagesSkippedRedirect, 1) }

// String renders a one-line human-readable summary, the shape printed at
// the end of a run unless --quiet is given.
func (r *Run) String() string {
	return fmt.Sprintf(
		"pages seen=%d emitted=%d skipped(namespace=%d empty=%d redirect~=%d)",
		atomic.LoadInt64(&r.PagesSeen),
		atomic.LoadInt64(&r.PagesEmitted),
		atomic.LoadInt64(&r.PagesSkippedNamespace),
		atomic.LoadInt64(&r.PagesSkippedEmpty),
		atomic.LoadInt64(&r.PagesSkippedRedirect),
	)
}
