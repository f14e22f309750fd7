// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wikitext

import "bytes"

// disambiguationMarkers lists the exact template bodies that signal a
// disambiguation page. A match aborts the whole parse with an empty
// result, the same way a redirect does.
var disambiguationMarkers = map[string]bool{
	"disambiguation":            true,
	"DISAMBIGUATION":            true,
	"Disambiguation":            true,
	"human name disambiguation": true,
	"HUMAN NAME DISAMBIGUATION": true,
	"Human Name Disambiguation": true,
}

// handleTemplate transforms the captured contents of a "{{...}}" span.
// Only the math template is expanded; everything else produces no
// output. abort is true when the template body is a disambiguation
// marker, signalling that the enclosing parse should return "".
func handleTemplate(p *parser, capture []byte) (text []byte, abort bool) {
	if disambiguationMarkers[string(capture)] {
		return nil, true
	}

	fields := splitQuirky(capture, '|')
	if len(fields) > 1 && string(fields[0]) == "math" {
		return []byte(p.recurse(fields[1], 1, false)), false
	}
	return nil, false
}

// handleInternalLink transforms the captured contents of a "[[...]]"
// span. File/Image targets are dropped entirely; a single-field link
// has its namespace prefix and any trailing comment after a comma
// stripped before being re-parsed; a piped link re-parses its last
// field (the display text).
func handleInternalLink(p *parser, capture []byte) []byte {
	fields := splitQuirky(capture, '|')
	if len(fields) == 0 {
		return nil
	}

	if idx := bytes.IndexByte(fields[0], ':'); idx >= 0 {
		switch string(fields[0][:idx]) {
		case "File", "Image", "file", "image":
			return nil
		}
	}

	if len(fields) == 1 {
		text := fields[0]
		if idx := bytes.IndexByte(text, ':'); idx >= 0 {
			text = text[idx+1:]
		}
		if idx := bytes.IndexByte(text, ','); idx >= 0 {
			text = text[:idx]
		}
		return []byte(p.recurse(text, 1, true))
	}

	return []byte(p.recurse(fields[len(fields)-1], 1, true))
}

// handleExternalLink transforms the captured contents of a "[...]"
// span, discarding the URL and re-parsing only the last space-separated
// field (the last word of the display text, or the URL when there is no
// display text).
func handleExternalLink(p *parser, capture []byte) []byte {
	fields := splitQuirky(capture, ' ')
	if len(fields) == 0 {
		return nil
	}
	return []byte(p.recurse(fields[len(fields)-1], 1, true))
}

// handleParenthetical transforms the captured contents of a "(...)"
// span. When dropParens is set the whole group is elided; otherwise it
// is re-parsed and re-wrapped with a leading space (the caller has
// already trimmed any space immediately preceding the opening paren).
func handleParenthetical(p *parser, capture []byte) []byte {
	if p.dropParens {
		return nil
	}
	inner := p.recurse(capture, 1, false)
	out := make([]byte, 0, len(inner)+3)
	out = append(out, ' ', '(')
	out = append(out, inner...)
	out = append(out, ')')
	return out
}

// handleTag transforms a closed "<name>body</name>" span. Only math and
// var tags pass their body through verbatim; everything else, including
// ref, is dropped.
func handleTag(name, body []byte) []byte {
	switch string(name) {
	case "math", "var":
		return body
	default:
		return nil
	}
}

// splitQuirky splits data on sep, reproducing the reference
// implementation's find-from-(last+1) scan: a delimiter immediately
// following another delimiter is not recognized as a boundary and is
// folded into the next field instead of producing an empty one.
func splitQuirky(data []byte, sep byte) [][]byte {
	var fields [][]byte
	last := 0
	for last != -1 {
		searchFrom := last + 1
		pos := -1
		if searchFrom <= len(data) {
			if idx := bytes.IndexByte(data[searchFrom:], sep); idx >= 0 {
				pos = searchFrom + idx
			}
		}
		if pos == -1 {
			fields = append(fields, data[last:])
			last = -1
		} else {
			fields = append(fields, data[last:pos])
			last = pos + 1
		}
	}
	return fields
}
