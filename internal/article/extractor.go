package article

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"

	"github.com/dhkim/newsclip/internal/logger"
)

const (
	// minBodyLength is the minimum visible-text length (in runes) for a
	// candidate match to count as the article body.
	minBodyLength = 50
	// maxFallbackLength bounds the whole-document fallback text.
	maxFallbackLength = 1000

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// candidate is one entry in the ordered list of article-container patterns.
// Matching is by tag name plus, when set, class or id.
type candidate struct {
	tag   string
	class string
	id    string
}

// bodyCandidates is evaluated in order; the first match with qualifying
// text wins. The entries cover the markup of the major Korean news portals.
var bodyCandidates = []candidate{
	{tag: "div", class: "article_body"},
	{tag: "div", class: "newsct_article"},
	{tag: "div", class: "go_trans"},
	{tag: "article"},
	{tag: "div", class: "article"},
	{tag: "div", id: "articleBody"},
}

func (c candidate) selector() string {
	sel := c.tag
	if c.class != "" {
		sel += "." + c.class
	}
	if c.id != "" {
		sel += "#" + c.id
	}
	return sel
}

// Extractor fetches a page and returns a best-effort plain-text rendering of
// its main article body.
type Extractor struct {
	client *resty.Client
}

func NewExtractor(timeout time.Duration) *Extractor {
	return &Extractor{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", userAgent),
	}
}

// Fetch downloads the URL (following redirects) and extracts the article
// text. A non-nil error means the fetch or parse failed; callers that need
// the legacy behavior convert it with FailureText.
func (e *Extractor) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := e.client.R().SetContext(ctx).Get(url)
	if err != nil {
		logger.Get().Error().Err(err).Str("url", url).Msg("Article fetch failed")
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		logger.Get().Warn().
			Int("status", resp.StatusCode()).
			Str("url", url).
			Msg("Article fetch returned non-OK status")
		return "", fmt.Errorf("unexpected status code %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(resp.Body())))
	if err != nil {
		return "", fmt.Errorf("failed to parse article HTML: %w", err)
	}

	return Extract(doc), nil
}

// Extract runs the ordered candidate search over a parsed document. It
// always returns a bounded string and never fails: when no candidate
// qualifies it falls back to the og:description meta tag, then to the
// truncated full-document text.
func Extract(doc *goquery.Document) string {
	for _, c := range bodyCandidates {
		sel := doc.Find(c.selector()).First()
		if sel.Length() == 0 {
			continue
		}
		text := visibleText(sel)
		if utf8.RuneCountInString(text) > minBodyLength {
			return text
		}
	}

	if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		return desc
	}

	return truncate(visibleText(doc.Selection), maxFallbackLength) + "..."
}

// FailureText is the placeholder returned in place of article text when
// extraction fails, matching what the UI has always shown.
func FailureText(err error) string {
	return "본문 수집 실패: " + err.Error()
}

// visibleText concatenates the text nodes under sel with single spaces,
// collapsing surrounding whitespace and skipping script/style content.
func visibleText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				parts = append(parts, t)
			}
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
