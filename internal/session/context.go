// Package session tracks the active profile for a client. The profile id
// lives in a long-lived cookie and is resolved once per request by
// middleware; handlers read it from request locals.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const CookieName = "active_profile_id"

const localsKey = "profile_id"

// ProfileID returns the active profile id resolved by the middleware.
func ProfileID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(localsKey).(uuid.UUID)
	return id, ok
}

// SetProfileID stores the resolved profile id on the request context.
func SetProfileID(c *fiber.Ctx, id uuid.UUID) {
	c.Locals(localsKey, id)
}

// SetCookie persists the active profile choice on the client.
func SetCookie(c *fiber.Ctx, id uuid.UUID, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    id.String(),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// CookieProfileID parses the client's cookie, if any.
func CookieProfileID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
