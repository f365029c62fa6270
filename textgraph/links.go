package textgraph

import "strings"

// CountLinks returns the number of edge records in text: the non-blank
// segments between newlines. CountLinks("") == 0.
func CountLinks(text string) int {
	n := 0
	for _, seg := range strings.Split(text, string(lineSep)) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}

	return n
}

// LegacyLinkCount counts newlines plus one. It agrees with CountLinks for
// non-empty Format output and reports 1 for "".
func LegacyLinkCount(text string) int {
	return strings.Count(text, string(lineSep)) + 1
}
