package compiler

import "strings"

// WordsPerMinute is the reading rate used to estimate unit duration.
const WordsPerMinute = 250

// Estimate returns the minutes needed to read text: whitespace-separated
// words divided by WordsPerMinute, rounded up, never less than 1.
func Estimate(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	return max(minutes, 1)
}
