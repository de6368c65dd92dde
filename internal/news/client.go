package news

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dhkim/newsclip/internal/cache"
	"github.com/dhkim/newsclip/internal/logger"
	"github.com/dhkim/newsclip/internal/models"
)

const searchURL = "https://openapi.naver.com/v1/search/news.json"

// Client calls the Naver news search API and normalizes the results. Any
// transport, status or decode failure degrades to an empty item list; the
// caller cannot tell a failed search from one with no matches.
type Client struct {
	client     *resty.Client
	normalizer *Normalizer
	cache      cache.SearchCache
	baseURL    string
	clientID   string
	secret     string
}

func NewClient(clientID, secret string, timeout time.Duration, searchCache cache.SearchCache) *Client {
	return &Client{
		client:     resty.New().SetTimeout(timeout),
		normalizer: NewNormalizer(),
		cache:      searchCache,
		baseURL:    searchURL,
		clientID:   clientID,
		secret:     secret,
	}
}

// SetBaseURL overrides the search endpoint, used by tests.
func (c *Client) SetBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// Search fetches one page of results for keyword, sorted by date upstream.
// The normalized items are written to the search cache under the keyword;
// the cache is never consulted to skip a fetch.
func (c *Client) Search(ctx context.Context, keyword string, start, display int) []models.NewsItem {
	log := logger.Get()

	if c.clientID == "" || c.secret == "" {
		log.Warn().Msg("Naver API credentials are not configured")
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Naver-Client-Id", c.clientID).
		SetHeader("X-Naver-Client-Secret", c.secret).
		SetQueryParams(map[string]string{
			"query":   keyword,
			"display": strconv.Itoa(display),
			"start":   strconv.Itoa(start),
			"sort":    "date",
		}).
		Get(c.baseURL)
	if err != nil {
		log.Error().Err(err).Str("keyword", keyword).Msg("News API request failed")
		return []models.NewsItem{}
	}

	if resp.StatusCode() != http.StatusOK {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("keyword", keyword).
			Msg("News API returned non-OK status")
		return []models.NewsItem{}
	}

	var payload models.SearchResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Error().Err(err).Str("keyword", keyword).Msg("Failed to decode news API response")
		return []models.NewsItem{}
	}

	items := c.normalizer.NormalizeAll(payload.Items)

	if c.cache != nil {
		if err := c.cache.Set(ctx, keyword, items); err != nil {
			log.Warn().Err(err).Str("keyword", keyword).Msg("Failed to cache search results")
		}
	}

	return items
}
