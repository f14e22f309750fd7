// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dump

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDump = `<mediawiki>
  <siteinfo><sitename>Wikipedia</sitename></siteinfo>
  <page>
    <title>Earth</title>
    <ns>0</ns>
    <revision>
      <id>1</id>
      <text>The '''Earth''' is the third planet.</text>
    </revision>
  </page>
  <page>
    <title>Mars</title>
    <ns>0</ns>
    <revision>
      <id>2</id>
      <text>'''Mars''' is the fourth planet &amp; is red.</text>
    </revision>
  </page>
</mediawiki>`

func TestReaderNext(t *testing.T) {
	r := NewReader(strings.NewReader(sampleDump))

	p, ok, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if !ok {
		t.Fatalf("Next() ok = false, want true")
	}
	want := Page{Title: "Earth"}
	want.Revision.Text = "The '''Earth''' is the third planet."
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Next() page mismatch (-want +got):\n%s", diff)
	}

	p, ok, err = r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if !ok {
		t.Fatalf("Next() ok = false, want true")
	}
	if p.Title != "Mars" {
		t.Errorf("Title = %q, want %q", p.Title, "Mars")
	}

	_, ok, err = r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if ok {
		t.Fatalf("Next() ok = true at end of input, want false")
	}
}

func TestReaderNextMalformed(t *testing.T) {
	r := NewReader(strings.NewReader(`<mediawiki><page><title>Broken</title>`))

	var lastErr error
	for {
		_, ok, err := r.Next()
		if err != nil {
			lastErr = err
			break
		}
		if !ok {
			break
		}
	}
	if lastErr == nil {
		t.Fatalf("expected a ParseError on truncated XML, got nil")
	}
	if _, ok := lastErr.(*ParseError); !ok {
		t.Fatalf("error = %T, want *ParseError", lastErr)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{in: "&#39;quoted&#39;", want: "'quoted'"},
	}
	for _, tt := range tests {
		if got := Decode(tt.in); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
