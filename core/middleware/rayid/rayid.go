package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request's ray ID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the Fiber locals key under which the ray ID is stored.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a unique ray ID.
// An incoming ID from an upstream proxy is kept so traces line up across
// services; otherwise a fresh UUID is generated. The ID is stored in the
// request locals and echoed in the response headers.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
