package news

import (
	"strings"
	"testing"

	"github.com/dhkim/newsclip/internal/models"
)

func TestCleanHTML(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tags and entities", "A &amp; <b>B</b>", "A & B"},
		{"nested tags", "<div><span>hello</span></div>", "hello"},
		{"no markup", "plain text", "plain text"},
		{"numeric entity", "&#44592;&#49324;", "기사"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.CleanHTML(tt.input)
			if got != tt.want {
				t.Errorf("CleanHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if strings.Contains(got, "<") || strings.Contains(got, ">") {
				t.Errorf("CleanHTML(%q) left residual markup: %q", tt.input, got)
			}
		})
	}
}

func TestDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.chosun.com/x", "chosun.com"},
		{"https://chosun.com/x", "chosun.com"},
		{"http://News.Naver.Com/article/1", "news.naver.com"},
		{"https://www.example.com:8080/path", "example.com:8080"},
		{"", ""},
		{"://bad", ""},
	}

	for _, tt := range tests {
		if got := Domain(tt.input); got != tt.want {
			t.Errorf("Domain(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatPubDate(t *testing.T) {
	got := FormatPubDate("Thu, 21 Nov 2024 11:50:00 +0900")
	want := "2024년 11월 21일 11시 50분"
	if got != want {
		t.Errorf("FormatPubDate = %q, want %q", got, want)
	}

	// Unparseable input falls back to the raw string.
	raw := "not a date"
	if got := FormatPubDate(raw); got != raw {
		t.Errorf("FormatPubDate(%q) = %q, want input unchanged", raw, got)
	}
	if got := FormatPubDate(""); got != "" {
		t.Errorf("FormatPubDate(\"\") = %q, want empty", got)
	}
}

func TestNormalizeSourceResolution(t *testing.T) {
	n := NewNormalizer()

	// Explicit upstream source wins over the lookup table.
	item := n.Normalize(models.RawItem{
		Title:        "t",
		OriginalLink: "https://www.chosun.com/article/1",
		Source:       "직접 제공",
	})
	if item.Source != "직접 제공" {
		t.Errorf("explicit source not preserved, got %q", item.Source)
	}

	// Known domain resolves through the table.
	item = n.Normalize(models.RawItem{
		Title:        "t",
		OriginalLink: "https://www.chosun.com/article/1",
	})
	if item.Source != "조선일보" {
		t.Errorf("table lookup failed, got %q", item.Source)
	}
	if item.Domain != "chosun.com" {
		t.Errorf("domain = %q, want chosun.com", item.Domain)
	}

	// Unknown domain falls back to the domain itself.
	item = n.Normalize(models.RawItem{
		Title: "t",
		Link:  "https://unknown.example.org/x",
	})
	if item.Source != "unknown.example.org" {
		t.Errorf("fallback source = %q, want domain", item.Source)
	}
}

func TestNormalizeOriginPrecedence(t *testing.T) {
	n := NewNormalizer()

	// originallink wins over link for domain extraction.
	item := n.Normalize(models.RawItem{
		OriginalLink: "https://www.hani.co.kr/a",
		Link:         "https://news.naver.com/b",
	})
	if item.Domain != "hani.co.kr" {
		t.Errorf("domain = %q, want hani.co.kr", item.Domain)
	}

	// link is used when originallink is empty.
	item = n.Normalize(models.RawItem{
		Link: "https://news.naver.com/b",
	})
	if item.Domain != "news.naver.com" {
		t.Errorf("domain = %q, want news.naver.com", item.Domain)
	}
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	n := NewNormalizer()

	raws := []models.RawItem{
		{Title: "first", Link: "https://a.example.com/1"},
		{Title: "second", Link: "https://b.example.com/2"},
		{Title: "third", Link: "https://c.example.com/3"},
	}

	items := n.NormalizeAll(raws)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Title != want {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, want)
		}
		if items[i].Domain == "" {
			t.Errorf("items[%d] has empty domain", i)
		}
	}
}
