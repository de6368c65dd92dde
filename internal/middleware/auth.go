package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dhkim/newsclip/internal/logger"
	"github.com/dhkim/newsclip/internal/utils"
)

// SessionCookie is the name of the access-gate cookie.
const SessionCookie = "newsclip_session"

// SessionToken derives the expected cookie value from the shared password.
func SessionToken(password string) string {
	return utils.Hash(password)
}

// CookieGate guards every route behind the shared access password. An empty
// password disables the gate entirely. API routes get a 401 JSON body;
// page routes redirect to /login. The login page, health check and static
// assets stay reachable.
func CookieGate(password string) fiber.Handler {
	token := SessionToken(password)

	return func(c *fiber.Ctx) error {
		if password == "" {
			return c.Next()
		}

		path := c.Path()
		if path == "/login" || path == "/health" || strings.HasPrefix(path, "/static") {
			return c.Next()
		}

		if c.Cookies(SessionCookie) == token {
			return c.Next()
		}

		logger.Get().Warn().
			Str("method", c.Method()).
			Str("path", path).
			Str("ip", c.IP()).
			Msg("Request without valid session cookie")

		if strings.HasPrefix(path, "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}
		return c.Redirect("/login", fiber.StatusFound)
	}
}
