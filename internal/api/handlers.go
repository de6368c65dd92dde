package api

import (
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dhkim/newsclip/internal/article"
	"github.com/dhkim/newsclip/internal/clips"
	"github.com/dhkim/newsclip/internal/config"
	"github.com/dhkim/newsclip/internal/logger"
	"github.com/dhkim/newsclip/internal/middleware"
	"github.com/dhkim/newsclip/internal/news"
	"github.com/dhkim/newsclip/internal/textutil"
)

type Handlers struct {
	config    *config.Config
	validate  *middleware.Validator
	news      *news.Client
	extractor *article.Extractor
	clips     clips.Store
}

func NewHandlers(cfg *config.Config, newsClient *news.Client, extractor *article.Extractor, clipStore clips.Store) *Handlers {
	return &Handlers{
		config:    cfg,
		validate:  middleware.NewValidator(),
		news:      newsClient,
		extractor: extractor,
		clips:     clipStore,
	}
}

type searchRequest struct {
	Keyword string `form:"keyword" validate:"required"`
	Start   int    `form:"start"`
}

type articleDetailRequest struct {
	URL   string `form:"url" validate:"required,url"`
	Title string `form:"title" validate:"required"`
}

type clipRequest struct {
	Title   string `form:"title" validate:"required"`
	URL     string `form:"url" validate:"required,url"`
	Content string `form:"content"`
}

type loginRequest struct {
	Password string `form:"password"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
	})
}

// Home handles GET /
func (h *Handlers) Home(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

// LoginPage handles GET /login
func (h *Handlers) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Error": c.Query("error"),
	})
}

// Login handles POST /login. A matching password sets the session cookie
// and redirects home; anything else bounces back to the login page.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Redirect("/login?error="+url.QueryEscape("잘못된 요청입니다"), fiber.StatusFound)
	}

	if h.config.AccessPassword == "" || req.Password == h.config.AccessPassword {
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    middleware.SessionToken(h.config.AccessPassword),
			Path:     "/",
			HTTPOnly: true,
		})
		return c.Redirect("/", fiber.StatusFound)
	}

	logger.Get().Warn().Str("ip", c.IP()).Msg("Login attempt with wrong password")
	return c.Redirect("/login?error="+url.QueryEscape("비밀번호가 올바르지 않습니다"), fiber.StatusFound)
}

// SearchAPI handles POST /api/search
func (h *Handlers) SearchAPI(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid form body",
		})
	}
	if err := h.validate.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if req.Start < 1 {
		req.Start = 1
	}

	items := h.news.Search(c.Context(), req.Keyword, req.Start, h.config.PageSize)
	return c.JSON(fiber.Map{
		"items": items,
		"total": len(items),
	})
}

// SearchResults handles POST /search-results and renders the result list
// fragment. Render failures answer 500 with a plain-text diagnostic.
func (h *Handlers) SearchResults(c *fiber.Ctx) error {
	var req searchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			SendString(fmt.Sprintf("Server Error: %v", err))
	}
	if err := h.validate.Validate(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			SendString(fmt.Sprintf("Server Error: %v", err))
	}
	if req.Start < 1 {
		req.Start = 1
	}

	items := h.news.Search(c.Context(), req.Keyword, req.Start, h.config.PageSize)

	if err := c.Render("search_results", fiber.Map{
		"Items":     items,
		"Keyword":   req.Keyword,
		"NextStart": req.Start + h.config.PageSize,
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			SendString(fmt.Sprintf("Server Error: %v", err))
	}
	return nil
}

// ArticleAPI handles GET /api/article?url=...
func (h *Handlers) ArticleAPI(c *fiber.Ctx) error {
	articleURL := c.Query("url")
	if articleURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "url query parameter is required",
		})
	}

	content, err := h.extractor.Fetch(c.Context(), articleURL)
	if err != nil {
		// Extraction failure still answers 200 with placeholder content.
		return c.JSON(fiber.Map{
			"success": false,
			"content": article.FailureText(err),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"content": content,
	})
}

// ArticleDetail handles POST /article-detail
func (h *Handlers) ArticleDetail(c *fiber.Ctx) error {
	var req articleDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid form body")
	}
	if err := h.validate.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	content, err := h.extractor.Fetch(c.Context(), req.URL)
	if err != nil {
		content = article.FailureText(err)
	}

	return c.Render("article_detail", fiber.Map{
		"Title":   req.Title,
		"URL":     req.URL,
		"Content": content,
	})
}

// SaveClip handles POST /api/clip. When no content is supplied the server
// extracts it from the URL before saving.
func (h *Handlers) SaveClip(c *fiber.Ctx) error {
	var req clipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid form body",
		})
	}
	if err := h.validate.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	content := req.Content
	if content == "" {
		extracted, err := h.extractor.Fetch(c.Context(), req.URL)
		if err != nil {
			content = article.FailureText(err)
		} else {
			content = extracted
		}
	}

	clip := h.clips.Save(req.Title, req.URL, content)
	logger.Get().Info().Str("clip_id", clip.ID).Str("url", clip.URL).Msg("Clip saved")

	return c.JSON(fiber.Map{
		"success": true,
		"clipId":  clip.ID,
		"message": "클리핑이 저장되었습니다",
	})
}

// ClippingsTab handles GET /clippings-tab
func (h *Handlers) ClippingsTab(c *fiber.Ctx) error {
	return c.Render("clippings", fiber.Map{
		"Clips": h.clips.List(),
	})
}

// ClipDetail handles GET /clips/:clipId
func (h *Handlers) ClipDetail(c *fiber.Ctx) error {
	id := c.Params("clipId")
	clip, ok := h.clips.Get(id)
	return c.Render("clip_detail", fiber.Map{
		"Found": ok,
		"Clip":  clip,
	})
}

// DeleteClip handles DELETE /api/clip/:clipId. Deleting an unknown id is a
// well-formed failure response, not an error.
func (h *Handlers) DeleteClip(c *fiber.Ctx) error {
	id := c.Params("clipId")
	if h.clips.Delete(id) {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "클리핑이 삭제되었습니다",
		})
	}
	return c.JSON(fiber.Map{
		"success": false,
		"message": "클리핑을 찾을 수 없습니다",
	})
}

// ClearClips handles DELETE /api/clips/all
func (h *Handlers) ClearClips(c *fiber.Ctx) error {
	cleared := h.clips.Clear()
	logger.Get().Info().Int("cleared", cleared).Msg("Clip store cleared")
	return c.JSON(fiber.Map{
		"success": true,
		"cleared": cleared,
	})
}

// timeNow is swapped out in tests.
var timeNow = time.Now

// TemplateFuncs returns the render helpers shared by the fragment templates.
func TemplateFuncs() map[string]interface{} {
	return map[string]interface{}{
		"timeago": func(raw string) string {
			return textutil.TimeAgoString(raw, timeNow())
		},
		"highlight": func(text, keyword string) template.HTML {
			return template.HTML(textutil.Highlight(template.HTMLEscapeString(text), keyword))
		},
	}
}
