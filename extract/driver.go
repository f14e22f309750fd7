// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package extract turns a page's raw wikitext into a short abstract.
package extract

import (
	"strings"

	"go.uber.org/zap"

	"github.com/patrickbrosi/wikiabstract/dump"
	"github.com/patrickbrosi/wikiabstract/internal/stats"
	"github.com/patrickbrosi/wikiabstract/wikitext"
)

// Driver runs the two-pass parse/decode pipeline that turns a page's
// wikitext body into an abstract.
type Driver struct {
	MaxParagraphs int
	Log           *zap.SugaredLogger
	Stats         *stats.Run
}

// NewDriver returns a Driver. log and st may be nil, in which case
// logging and counting are skipped (useful for tests that only care
// about the returned abstract).
func NewDriver(maxParagraphs int, log *zap.SugaredLogger, st *stats.Run) *Driver {
	return &Driver{MaxParagraphs: maxParagraphs, Log: log, Stats: st}
}

// looksLikeRedirect reports whether body opens with a #REDIRECT marker,
// for stats purposes only; it plays no part in the actual parse.
func looksLikeRedirect(body string) bool {
	trimmed := strings.TrimLeft(body, " \t")
	for _, marker := range []string{"#REDIRECT", "#redirect", "#Redirect"} {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// Abstract runs the full parse -> decode -> decode -> parse pipeline for
// one page and reports whether a nonempty abstract was produced.
func (d *Driver) Abstract(title, body string) (string, bool) {
	if d.Stats != nil {
		d.Stats.IncSeen()
	}

	a := wikitext.Parse([]byte(body), d.MaxParagraphs, true)
	a = dump.Decode(a)
	a = dump.Decode(a)
	a = wikitext.Parse([]byte(a), d.MaxParagraphs, false)

	if d.Log != nil {
		d.Log.Debugw("extracted abstract",
			"title", title,
			"wikitextBytes", len(body),
			"abstractBytes", len(a),
		)
	}

	if a == "" {
		if d.Stats != nil {
			if looksLikeRedirect(body) {
				d.Stats.IncSkippedRedirect()
			} else {
				d.Stats.IncSkippedEmpty()
			}
		}
		return "", false
	}

	if d.Stats != nil {
		d.Stats.IncEmitted()
	}
	return a, true
}
