package models

// RawItem is one search hit exactly as the Naver news API returns it.
// Title and description still carry markup and entity escapes.
type RawItem struct {
	Title        string `json:"title"`
	OriginalLink string `json:"originallink"`
	Link         string `json:"link"`
	Description  string `json:"description"`
	Source       string `json:"source"`
	PubDate      string `json:"pubDate"`
}

// SearchResponse is the envelope of the Naver news search API.
type SearchResponse struct {
	Total int       `json:"total"`
	Start int       `json:"start"`
	Items []RawItem `json:"items"`
}

// NewsItem is one normalized search hit. Title and Description are plain
// text, Domain is the lower-cased host with a leading "www." stripped, and
// Source is never empty when Domain is non-empty. Items are built once per
// response and not mutated afterwards.
type NewsItem struct {
	Title            string `json:"title"`
	Link             string `json:"link"`
	OriginalLink     string `json:"originallink"`
	Description      string `json:"description"`
	Source           string `json:"source"`
	PubDate          string `json:"pubDate"`
	Domain           string `json:"domain"`
	FormattedPubDate string `json:"formatted_pubdate"`
}
