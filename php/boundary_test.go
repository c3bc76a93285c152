package php

import (
	"errors"
	"strings"
	"testing"

	"github.com/chuhta/php-ide-serenata/php/parser"
)

func TestFindExpressionStartEmpty(t *testing.T) {
	got, err := FindExpressionStart("", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("FindExpressionStart(\"\", 0) = %d, want 0", got)
	}
}

func TestFindExpressionStartInvalidOffset(t *testing.T) {
	for _, cursor := range []int{-1, 4, 100} {
		_, err := FindExpressionStart("abc", cursor)
		if !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("FindExpressionStart(\"abc\", %d) error = %v, want ErrInvalidOffset", cursor, err)
		}
	}
}

func TestFindExpressionStartScenarios(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   int
	}{
		{
			"plain chain scans to start",
			"$this->getFoo()->bar",
			0,
		},
		{
			"balanced brackets and identifiers only",
			"foo(bar[baz])",
			0,
		},
		{
			"namespaced static prefix included",
			"Foo\\Bar::baz()->qux",
			0,
		},
		{
			"statement block terminates scan",
			"if ($x) { $this->test(); } $foo->bar",
			strings.LastIndex("if ($x) { $this->test(); } $foo->bar", "}") + 1,
		},
		{
			"semicolon terminates scan",
			"$a = 1; $b->c",
			strings.Index("$a = 1; $b->c", ";") + 1,
		},
		{
			"assignment terminates scan",
			"$x = $foo->bar",
			strings.Index("$x = $foo->bar", "=") + 1,
		},
		{
			"comma terminates scan",
			"foo($a, $b->c",
			strings.Index("foo($a, $b->c", ",") + 1,
		},
		{
			"unmatched opening paren terminates scan",
			"foo($bar->baz",
			strings.Index("foo($bar->baz", "(") + 1,
		},
		{
			"ternary question mark terminates scan",
			"$a ? $b->c",
			strings.Index("$a ? $b->c", "?") + 1,
		},
		{
			"nullsafe operator does not terminate",
			"$a?->b",
			0,
		},
		{
			"return keyword terminates scan",
			"return $this->foo",
			len("return"),
		},
		{
			"concatenation dot terminates scan",
			"'a' . $b->c",
			strings.Index("'a' . $b->c", ".") + 1,
		},
		{
			"close brace directly before variable is transparent",
			"}$a->b",
			0,
		},
		{
			"parenthesized instantiation scans to start",
			"(new Foo())->bar",
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindExpressionStart(tt.source, len(tt.source))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FindExpressionStart(%q) = %d, want %d", tt.source, got, tt.want)
			}
		})
	}
}

func TestFindExpressionStartNeverPastCursor(t *testing.T) {
	source := "if ($x) { $this->test(); } $foo->bar"
	for cursor := 0; cursor <= len(source); cursor++ {
		got, err := FindExpressionStart(source, cursor)
		if err != nil {
			t.Fatal(err)
		}
		if got < 0 || got > cursor {
			t.Errorf("FindExpressionStart(cursor=%d) = %d, out of [0, %d]", cursor, got, cursor)
		}
	}
}

func TestFindExpressionStartInsideStringLiteral(t *testing.T) {
	// The scan begins inside the unterminated string, so the string content,
	// including its semicolon, is part of the expression.
	source := `echo "abc; def`
	got, err := FindExpressionStart(source, len(source))
	if err != nil {
		t.Fatal(err)
	}
	if want := len("echo"); got != want {
		t.Errorf("FindExpressionStart(%q) = %d, want %d", source, got, want)
	}
}

func TestFindExpressionStartCommentTransparent(t *testing.T) {
	source := "$a = 1; $foo/* x; y */->bar"
	got, err := FindExpressionStart(source, len(source))
	if err != nil {
		t.Fatal(err)
	}
	if want := strings.Index(source, ";") + 1; got != want {
		t.Errorf("FindExpressionStart(%q) = %d, want %d", source, got, want)
	}
}

func TestFindExpressionStartStaticReferenceStops(t *testing.T) {
	// Once "::" is seen, only the class name may extend the expression.
	source := "$a instanceof Foo::bar"
	got, err := FindExpressionStart(source, len(source))
	if err != nil {
		t.Fatal(err)
	}
	if want := strings.Index(source, "Foo"); got != want {
		t.Errorf("FindExpressionStart(%q) = %d, want %d", source, got, want)
	}
}

func TestScannerWithBoundaryKinds(t *testing.T) {
	source := "return $this->foo"

	// Default set treats "return" as a boundary.
	got, err := FindExpressionStart(source, len(source))
	if err != nil {
		t.Fatal(err)
	}
	if got != len("return") {
		t.Errorf("default scanner = %d, want %d", got, len("return"))
	}

	// An empty boundary set scans through it.
	scanner := NewScanner(WithBoundaryKinds())
	got, err = scanner.FindExpressionStart(source, len(source))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("empty boundary set = %d, want 0", got)
	}
}

func TestScannerWithTokenizer(t *testing.T) {
	var called bool
	tokenizer := TokenizerFunc(func(src []byte) []parser.Token {
		called = true
		return parser.Tokenize(src)
	})

	scanner := NewScanner(WithTokenizer(tokenizer))
	if _, err := scanner.FindExpressionStart("$a->b", 5); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("custom tokenizer was not consulted")
	}
}
