package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is where the ray ID is stored on the request context.
const LocalsKey = "ray_id"

// HeaderName is the response header carrying the ray ID.
const HeaderName = "X-Ray-Id"

// New creates a middleware that assigns every request a unique ray ID for
// tracing. An ID supplied by the caller in the request header is reused so
// upstream systems can correlate their own logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
