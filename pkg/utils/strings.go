package utils

import "strings"

// CountURLs counts link-looking tokens in a text. Used by the spam
// heuristics, so it only needs to catch the obvious cases.
func CountURLs(text string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		lowered := strings.ToLower(token)
		if strings.HasPrefix(lowered, "http://") ||
			strings.HasPrefix(lowered, "https://") ||
			strings.HasPrefix(lowered, "www.") {
			count++
		}
	}
	return count
}
