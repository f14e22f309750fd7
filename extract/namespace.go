// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package extract

import "strings"

// dropNamespaces are the administrative namespace prefixes whose pages
// never get an abstract. Matching is exact and case-sensitive against the
// text before the first colon in the title.
var dropNamespaces = map[string]bool{
	"User":              true,
	"Wikipedia":         true,
	"File":              true,
	"MediaWiki":         true,
	"Template":          true,
	"Help":              true,
	"Category":          true,
	"Portal":            true,
	"Book":              true,
	"Draft":             true,
	"TimedText":         true,
	"Module":            true,
	"Education Program": true,
	"Gadget":            true,
	"Gadget definition": true,
	"Special":           true,
	"Media":             true,
}

// NamespaceFilter decides whether a page's title admits it to abstract
// extraction.
type NamespaceFilter struct{}

// Accept reports whether title belongs to a namespace that gets an
// abstract. A title with no colon is always accepted (main/article
// namespace); "Colon:Title" is rejected only when the text before the
// colon is one of the administrative namespaces verbatim.
func (NamespaceFilter) Accept(title string) bool {
	if idx := strings.IndexByte(title, ':'); idx >= 0 {
		if dropNamespaces[title[:idx]] {
			return false
		}
	}
	return true
}
