package php

import (
	"testing"
)

func TestStripPairContent(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		opener rune
		closer rune
		want   string
	}{
		{"empty", "", '(', ')', ""},
		{"no pairs", "foo", '(', ')', "foo"},
		{"empty pair unchanged", "foo()", '(', ')', "foo()"},
		{"simple arguments", "foo(1, 2)", '(', ')', "foo()"},
		{"nested collapses with group", "foo(bar(1,2), 3)", '(', ')', "foo()"},
		{"sibling groups", "foo(1)(2)", '(', ')', "foo()()"},
		{"sibling calls in chain", "foo(1)->bar(2)", '(', ')', "foo()->bar()"},
		{"braces", "function () { return 1; }", '{', '}', "function () {}"},
		{"multibyte content", "foo(«1», 2)", '(', ')', "foo()"},
		{"unbalanced open kept", "foo(bar", '(', ')', "foo(bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripPairContent(tt.input, tt.opener, tt.closer); got != tt.want {
				t.Errorf("StripPairContent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
