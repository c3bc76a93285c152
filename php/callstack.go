package php

import (
	"regexp"
	"strings"
)

var (
	lineCommentPattern  = regexp.MustCompile(`//[^\n]*`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	newWrapperPattern   = regexp.MustCompile(`(?s)^\(new\s`)
	closurePattern      = regexp.MustCompile(`function\s*(?:[A-Za-z0-9_]+\s*)?\(`)
)

// ExtractAccessChain finds the expression ending at the end of source and
// flattens it into its ordered access segments, e.g.
// "$this->getFoo()->bar" yields ["$this", "getFoo()", "bar"].
func ExtractAccessChain(source string) ([]string, error) {
	start, err := FindExpressionStart(source, len(source))
	if err != nil {
		return nil, err
	}
	return SanitizeCallStack(source[start:]), nil
}

// SanitizeCallStack reduces raw expression text to its ordered access
// segments. Comments are removed, call argument lists and closure bodies are
// collapsed to their markers, and the remainder is split on the object and
// static access operators. A trailing operator yields a final empty segment,
// which callers rely on when completing right after "->" or "::". Only empty
// input produces an empty chain.
func SanitizeCallStack(text string) []string {
	text = strings.TrimSpace(text)
	text = lineCommentPattern.ReplaceAllString(text, "")
	text = blockCommentPattern.ReplaceAllString(text, "")

	// A leading "(new ...)" is a disambiguation wrapper, not part of the
	// chain. Drop the outer pair only.
	if newWrapperPattern.MatchString(text) {
		text = unwrapFirstPair(text)
	}

	// Collapse a closure literal down to its signature before splitting so
	// the body cannot contribute bogus segments.
	if closurePattern.MatchString(text) {
		text = StripPairContent(text, '{', '}')
	}

	text = StripPairContent(text, '(', ')')

	if strings.TrimSpace(text) == "" {
		return nil
	}

	var chain []string
	text = strings.ReplaceAll(text, "?->", "->")
	for _, part := range strings.Split(text, "->") {
		for _, sub := range strings.Split(part, "::") {
			chain = append(chain, strings.TrimSpace(sub))
		}
	}
	return chain
}

// unwrapFirstPair removes the first opening parenthesis and its matching
// closing one, keeping everything in between.
func unwrapFirstPair(text string) string {
	runes := []rune(text)
	depth := 0
	for i, r := range runes {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				rest := append([]rune{}, runes[1:i]...)
				rest = append(rest, runes[i+1:]...)
				return string(rest)
			}
		}
	}
	return text
}
