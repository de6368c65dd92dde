package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const longBody = "이 문장은 기사 본문으로 인정되기에 충분한 길이를 가진 텍스트입니다. 후보 검색이 여기서 멈추어야 합니다."

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test document: %v", err)
	}
	return doc
}

func TestExtractCandidateOrder(t *testing.T) {
	// Both div.article_body and article qualify; the higher-priority
	// candidate must win.
	doc := parseDoc(t, `<html><body>
		<article>`+longBody+` (낮은 우선순위)</article>
		<div class="article_body">`+longBody+`</div>
	</body></html>`)

	got := Extract(doc)
	if got != longBody {
		t.Errorf("Extract = %q, want the article_body candidate", got)
	}
}

func TestExtractSkipsShortCandidates(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div class="article_body">짧음</div>
		<article>`+longBody+`</article>
	</body></html>`)

	got := Extract(doc)
	if got != longBody {
		t.Errorf("Extract = %q, want the article fallback candidate", got)
	}
}

func TestExtractByID(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<div id="articleBody">`+longBody+`</div>
	</body></html>`)

	if got := Extract(doc); got != longBody {
		t.Errorf("Extract = %q, want id-matched body", got)
	}
}

func TestExtractCollapsesWhitespace(t *testing.T) {
	doc := parseDoc(t, `<html><body><div class="article_body">
		<p>`+longBody+`</p>
		<p>두 번째   문단</p>
		<script>ignored()</script>
	</div></body></html>`)

	got := Extract(doc)
	want := longBody + " 두 번째 문단"
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestExtractOGDescriptionFallback(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta property="og:description" content="메타 설명입니다">
	</head><body><p>본문 아님</p></body></html>`)

	if got := Extract(doc); got != "메타 설명입니다" {
		t.Errorf("Extract = %q, want og:description content", got)
	}
}

func TestExtractFullTextFallbackIsBounded(t *testing.T) {
	// No candidate selectors, no og:description: the whole document text is
	// returned, truncated with a marker.
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 200; i++ {
		sb.WriteString("<p>반복되는 문단 텍스트</p>")
	}
	sb.WriteString("</body></html>")

	got := Extract(parseDoc(t, sb.String()))
	if !strings.HasSuffix(got, "...") {
		t.Errorf("fallback text missing truncation marker: %q", got[len(got)-20:])
	}
	if n := utf8.RuneCountInString(got); n > maxFallbackLength+3 {
		t.Errorf("fallback text has %d runes, want <= %d", n, maxFallbackLength+3)
	}
}

func TestExtractNeverEmptyDocument(t *testing.T) {
	got := Extract(parseDoc(t, "<html><body></body></html>"))
	if got != "..." {
		t.Errorf("Extract on empty document = %q", got)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="article_body">` + longBody + `</div></body></html>`))
	}))
	defer srv.Close()

	e := NewExtractor(2 * time.Second)
	got, err := e.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if got != longBody {
		t.Errorf("Fetch = %q, want article body", got)
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	e := NewExtractor(2 * time.Second)
	if _, err := e.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for non-OK status")
	}
}

func TestFetchUnreachable(t *testing.T) {
	e := NewExtractor(500 * time.Millisecond)
	_, err := e.Fetch(context.Background(), "http://127.0.0.1:1")
	if err == nil {
		t.Fatal("expected error for unreachable host")
	}
	if msg := FailureText(err); !strings.HasPrefix(msg, "본문 수집 실패: ") {
		t.Errorf("FailureText = %q", msg)
	}
}
