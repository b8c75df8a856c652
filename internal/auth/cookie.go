package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the only channel the raw session token travels through.
// It must never appear in a JSON response body.
const CookieName = "access_token"

// CookieManager attaches and deletes the session cookie. The client and the
// API may live on different origins, so the cookie is SameSite=None and
// therefore must also be Secure.
type CookieManager struct {
	ttl time.Duration
}

// NewCookieManager builds a manager whose cookie expiry matches the token TTL.
func NewCookieManager(ttl time.Duration) *CookieManager {
	return &CookieManager{ttl: ttl}
}

// Issue sets the session cookie on the response.
func (m *CookieManager) Issue(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(m.ttl),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
}

// Clear instructs the client to delete the session cookie. Calling it when
// no cookie exists is not an error.
func (m *CookieManager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
}

// ReadToken extracts the raw session token from the request, or "" when the
// cookie is absent.
func ReadToken(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}
