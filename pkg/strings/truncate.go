package strings

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// MinTruncateLen is the minimum maxLen value for Truncate.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// Truncate collapses s onto a single line and shortens it to maxLen display
// columns, ending truncated values with "...". A maxLen of zero or less
// returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}

	s = strings.Join(strings.Fields(s), " ")

	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}
	if text.StringWidthWithoutEscSequences(s) <= maxLen {
		return s
	}
	return text.Trim(s, maxLen-3) + "..."
}
