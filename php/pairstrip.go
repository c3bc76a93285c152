package php

// StripPairContent removes the text between balanced pairs of the given open
// and close markers while keeping the markers themselves. Nested pairs
// collapse together with their top-level group; sibling groups at the same
// level collapse independently, e.g. "foo(bar(1,2), 3)(x)" becomes "foo()()".
// The scan works on characters, not bytes, so multi-byte text between markers
// is handled correctly.
func StripPairContent(text string, opener, closer rune) string {
	runes := []rune(text)
	opened, closed := 0, 0
	startIndex := 0

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case opener:
			opened++
			if opened == 1 {
				startIndex = i
			}
		case closer:
			closed++
			if opened > 0 && closed == opened {
				removed := i - startIndex - 1
				runes = append(runes[:startIndex+1], runes[i:]...)
				i -= removed
				opened, closed = 0, 0
			}
		}
	}
	return string(runes)
}
