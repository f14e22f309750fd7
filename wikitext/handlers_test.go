// Copyright 2024 The Wikiabstract Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package wikitext

import (
	"bytes"
	"testing"
)

func TestSplitQuirky(t *testing.T) {
	tests := []struct {
		name string
		data string
		sep  byte
		want []string
	}{
		{name: "no separator", data: "abc", sep: '|', want: []string{"abc"}},
		{name: "empty", data: "", sep: '|', want: []string{""}},
		{name: "simple", data: "a|b|c", sep: '|', want: []string{"a", "b", "c"}},
		{
			name: "consecutive separators swallow the second one into content",
			data: "a||b",
			sep:  '|',
			want: []string{"a", "|b"},
		},
		{name: "trailing separator", data: "a|b|", sep: '|', want: []string{"a", "b", ""}},
		{
			name: "leading separator swallows the first field's boundary too",
			data: "|a|b",
			sep:  '|',
			want: []string{"|a", "b"},
		},
		{name: "space separator", data: "one two three", sep: ' ', want: []string{"one", "two", "three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitQuirky([]byte(tt.data), tt.sep)
			if len(got) != len(tt.want) {
				t.Fatalf("splitQuirky(%q, %q) = %q, want %q", tt.data, tt.sep, got, tt.want)
			}
			for i := range got {
				if !bytes.Equal(got[i], []byte(tt.want[i])) {
					t.Errorf("splitQuirky(%q, %q)[%d] = %q, want %q", tt.data, tt.sep, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHandleTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		body string
		want string
	}{
		{name: "math passes through", tag: "math", body: "x^2", want: "x^2"},
		{name: "var passes through", tag: "var", body: "n", want: "n"},
		{name: "ref is dropped", tag: "ref", body: "citation", want: ""},
		{name: "unknown tag is dropped", tag: "small", body: "fine print", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleTag([]byte(tt.tag), []byte(tt.body))
			if string(got) != tt.want {
				t.Errorf("handleTag(%q, %q) = %q, want %q", tt.tag, tt.body, got, tt.want)
			}
		})
	}
}

func TestDisambiguationMarkers(t *testing.T) {
	for marker := range disambiguationMarkers {
		_, abort := handleTemplate(nil, []byte(marker))
		if !abort {
			t.Errorf("handleTemplate(%q) did not abort", marker)
		}
	}
	if _, abort := handleTemplate(nil, []byte("not a disambiguation marker")); abort {
		t.Errorf("handleTemplate aborted on a non-marker body")
	}
}
