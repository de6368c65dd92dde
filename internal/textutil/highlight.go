package textutil

import "regexp"

// Highlight wraps every case-insensitive, non-overlapping occurrence of
// keyword in a <mark> tag. The keyword is treated as a literal substring,
// not a pattern. Empty text or keyword is a no-op.
func Highlight(text, keyword string) string {
	if text == "" || keyword == "" {
		return text
	}

	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(keyword))
	if err != nil {
		return text
	}

	return pattern.ReplaceAllString(text, `<mark class="highlight">$0</mark>`)
}
