package news

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dhkim/newsclip/internal/models"
)

// Normalizer turns raw search hits into NewsItems: markup stripped, entities
// decoded, source resolved and the publish date formatted for display.
type Normalizer struct {
	htmlTagRegex *regexp.Regexp
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		htmlTagRegex: regexp.MustCompile(`<[^>]*>`),
	}
}

// CleanHTML removes tag-shaped markup and decodes HTML entities. Malformed
// markup is stripped by the regex, not parsed; best effort only.
func (n *Normalizer) CleanHTML(input string) string {
	cleaned := n.htmlTagRegex.ReplaceAllString(input, "")
	return html.UnescapeString(cleaned)
}

// Domain extracts the lower-cased host of rawURL with a single leading
// "www." removed. Ports, IDNs and trailing dots pass through unchanged.
func Domain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Host)
	return strings.TrimPrefix(host, "www.")
}

// FormatPubDate renders an RFC-1123Z date ("Thu, 21 Nov 2024 11:50:00 +0900")
// as "2024년 11월 21일 11시 50분" using the parsed calendar fields verbatim,
// without timezone conversion. Unparseable input is returned unchanged.
func FormatPubDate(raw string) string {
	if raw == "" {
		return raw
	}
	t, err := time.Parse(time.RFC1123Z, raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d년 %d월 %d일 %d시 %d분",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// Normalize builds a NewsItem from one raw search hit.
func (n *Normalizer) Normalize(raw models.RawItem) models.NewsItem {
	origin := raw.OriginalLink
	if origin == "" {
		origin = raw.Link
	}
	domain := Domain(origin)

	source := raw.Source
	if source == "" {
		source = SourceName(domain)
	}

	return models.NewsItem{
		Title:            n.CleanHTML(raw.Title),
		Link:             raw.Link,
		OriginalLink:     raw.OriginalLink,
		Description:      n.CleanHTML(raw.Description),
		Source:           source,
		PubDate:          raw.PubDate,
		Domain:           domain,
		FormattedPubDate: FormatPubDate(raw.PubDate),
	}
}

// NormalizeAll preserves the input order; the API already sorts by date.
func (n *Normalizer) NormalizeAll(raws []models.RawItem) []models.NewsItem {
	items := make([]models.NewsItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, n.Normalize(raw))
	}
	return items
}
