// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wikitext

// A Mode is one state of the byte-level wikitext scanner. The scanner has
// no states beyond these; depth counters on the Parser disambiguate
// nested occurrences of the same construct.
type Mode int

const (
	// ModeLineBegin is the state at the start of each physical line.
	ModeLineBegin Mode = iota
	// ModeText is the main prose-accumulating state.
	ModeText
	// ModeInHeading is entered on a leading run of '=' at ModeLineBegin.
	ModeInHeading
	// ModeInHeadingTitle accumulates (and discards) the heading's title text.
	ModeInHeadingTitle
	// ModeInHeadingClose disambiguates a trailing '=' run from title content.
	ModeInHeadingClose
	// ModeInTemplate is entered on "{{".
	ModeInTemplate
	// ModeInTable is entered on "{|".
	ModeInTable
	// ModeInDoubleLink is entered on "[[".
	ModeInDoubleLink
	// ModeInSingleLink is entered on "[".
	ModeInSingleLink
	// ModeInParen is entered on "(".
	ModeInParen
	// ModeInTag is entered on a recognized HTML-like opening tag "<...>".
	ModeInTag
)

func (m Mode) String() string {
	switch m {
	case ModeLineBegin:
		return "LineBegin"
	case ModeText:
		return "Text"
	case ModeInHeading:
		return "InHeading"
	case ModeInHeadingTitle:
		return "InHeadingTitle"
	case ModeInHeadingClose:
		return "InHeadingClose"
	case ModeInTemplate:
		return "InTemplate"
	case ModeInTable:
		return "InTable"
	case ModeInDoubleLink:
		return "InDoubleLink"
	case ModeInSingleLink:
		return "InSingleLink"
	case ModeInParen:
		return "InParen"
	case ModeInTag:
		return "InTag"
	}
	return "Invalid"
}
