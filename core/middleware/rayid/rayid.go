// Package rayid assigns a unique request identifier to every request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request identifier.
const HeaderName = "X-Ray-ID"

// New returns a middleware that ensures every request carries a RayID.
// An identifier supplied by the caller is kept; otherwise a new one is
// generated. The identifier is stored in locals for logging and echoed in
// the response headers.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
