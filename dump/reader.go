// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package dump streams MediaWiki XML export dumps one page at a time.
package dump

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"html"
	"io"
)

// Page is a single <page> element of a MediaWiki export dump. Only the
// fields the extractor needs are decoded; everything else (contributor,
// timestamps, sha1) is left to the decoder to discard.
type Page struct {
	Title    string `xml:"title"`
	Revision struct {
		Text string `xml:"text"`
	} `xml:"revision"`
}

// ParseError wraps a malformed-XML failure with the byte offset the
// decoder had reached, for diagnostics.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dump: malformed XML at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader streams <page> elements out of a MediaWiki export dump without
// ever materializing the document in memory. It is not safe for
// concurrent use; each goroutine that wants its own cursor over a dump
// needs its own Reader over its own file handle.
type Reader struct {
	dec   *xml.Decoder
	depth int
}

// NewReader wraps r in a buffered reader and streams pages from it.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: xml.NewDecoder(bufio.NewReader(r))}
}

// Next advances to the next <page> element at depth 2 (directly under the
// document root) and decodes it. It returns
// (Page{}, false, nil) at a clean end of input, and a non-nil *ParseError
// if the underlying XML is malformed.
func (r *Reader) Next() (Page, bool, error) {
	for {
		tok, err := r.dec.Token()
		if err == io.EOF {
			return Page{}, false, nil
		}
		if err != nil {
			return Page{}, false, &ParseError{Offset: r.dec.InputOffset(), Err: err}
		}

		if _, ok := tok.(xml.EndElement); ok {
			r.depth--
			continue
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		r.depth++
		if start.Name.Local != "page" || r.depth != 2 {
			continue
		}
		// DecodeElement consumes the matching </page> as well.
		r.depth--

		var p Page
		if err := r.dec.DecodeElement(&p, &start); err != nil {
			return Page{}, false, &ParseError{Offset: r.dec.InputOffset(), Err: err}
		}
		return p, true, nil
	}
}

// Decode reverses one layer of HTML/XML entity escaping, used by the
// extractor's two-pass decode between parser runs. It is idempotent on
// text that carries no entities.
func Decode(s string) string {
	return html.UnescapeString(s)
}
