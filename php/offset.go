package php

import (
	"strings"
	"unicode/utf8"
)

// LineAt returns the 1-indexed line number of the given byte offset.
func LineAt(source string, byteOffset int) int {
	if byteOffset > len(source) {
		byteOffset = len(source)
	}
	if byteOffset < 0 {
		byteOffset = 0
	}
	return 1 + strings.Count(source[:byteOffset], "\n")
}

// ByteOffsetToCharOffset returns the number of characters represented by the
// first byteOffset bytes of text. The result equals byteOffset only when the
// prefix is pure single-byte text.
func ByteOffsetToCharOffset(byteOffset int, text string) int {
	if byteOffset > len(text) {
		byteOffset = len(text)
	}
	if byteOffset < 0 {
		byteOffset = 0
	}
	return utf8.RuneCountInString(text[:byteOffset])
}

// CharOffsetToByteOffset returns the byte length of the first charOffset
// characters of text. Round-tripping through ByteOffsetToCharOffset is exact
// for character-aligned offsets; a byte offset that lands inside a multi-byte
// sequence does not round-trip.
func CharOffsetToByteOffset(charOffset int, text string) int {
	if charOffset <= 0 {
		return 0
	}
	n := 0
	for i := range text {
		if n == charOffset {
			return i
		}
		n++
	}
	return len(text)
}
