package php

import (
	"reflect"
	"testing"
)

func TestSanitizeCallStack(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"empty",
			"",
			nil,
		},
		{
			"whitespace only",
			"  \n\t ",
			nil,
		},
		{
			"single variable",
			"$this",
			[]string{"$this"},
		},
		{
			"method chain",
			"$this->getFoo()->bar",
			[]string{"$this", "getFoo()", "bar"},
		},
		{
			"nullsafe chain",
			"$foo?->getBar()?->baz",
			[]string{"$foo", "getBar()", "baz"},
		},
		{
			"static access",
			"Foo\\Bar::baz()->qux",
			[]string{"Foo\\Bar", "baz()", "qux"},
		},
		{
			"arguments collapsed",
			"$this->filter(foo(1,2), 3)->first()",
			[]string{"$this", "filter()", "first()"},
		},
		{
			"trailing operator keeps empty segment",
			"$this->",
			[]string{"$this", ""},
		},
		{
			"trailing static operator keeps empty segment",
			"Foo::",
			[]string{"Foo", ""},
		},
		{
			"instantiation wrapper unwrapped",
			"(new Foo(1, 2))->bar",
			[]string{"new Foo()", "bar"},
		},
		{
			"closure body stripped",
			"$this->filter(function ($x) { return $x->y; })->first()",
			[]string{"$this", "filter()", "first()"},
		},
		{
			"line comment removed",
			"$this // comment\n->getFoo()",
			[]string{"$this", "getFoo()"},
		},
		{
			"block comment removed",
			"$this->getFoo(/* arg\nspanning lines */)->bar",
			[]string{"$this", "getFoo()", "bar"},
		},
		{
			"surrounding whitespace trimmed",
			"  $foo->bar  ",
			[]string{"$foo", "bar"},
		},
		{
			"segments trimmed",
			"$foo\n    ->bar\n    ->baz",
			[]string{"$foo", "bar", "baz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeCallStack(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SanitizeCallStack(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractAccessChain(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			"method chain",
			"$this->getFoo()->bar",
			[]string{"$this", "getFoo()", "bar"},
		},
		{
			"chain after statement",
			"if ($x) { $this->test(); } $foo->bar",
			[]string{"$foo", "bar"},
		},
		{
			"namespaced static call",
			"Foo\\Bar::baz()->qux",
			[]string{"Foo\\Bar", "baz()", "qux"},
		},
		{
			"chain after assignment",
			"$x = $foo->bar",
			[]string{"$foo", "bar"},
		},
		{
			"trailing object operator",
			"$this->",
			[]string{"$this", ""},
		},
		{
			"empty source",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAccessChain(tt.source)
			if err != nil {
				t.Fatalf("ExtractAccessChain(%q): %v", tt.source, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractAccessChain(%q) = %#v, want %#v", tt.source, got, tt.want)
			}
		})
	}
}

func TestExtractAccessChainIdempotentOnFlatChain(t *testing.T) {
	source := "$a->b->c"

	first, err := ExtractAccessChain(source)
	if err != nil {
		t.Fatal(err)
	}

	start, err := FindExpressionStart(source, len(source))
	if err != nil {
		t.Fatal(err)
	}
	second := SanitizeCallStack(source[start:])

	if !reflect.DeepEqual(first, second) {
		t.Errorf("chains differ: %#v vs %#v", first, second)
	}
	if !reflect.DeepEqual(first, []string{"$a", "b", "c"}) {
		t.Errorf("chain = %#v, want [$a b c]", first)
	}
}
