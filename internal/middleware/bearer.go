package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/member-api/member_api/internal/auth"
)

// BearerAuth guards a route with token verification. A request without a
// usable Authorization header is rejected 401, a request whose token fails
// signature or expiry checks is rejected 403; both responses carry no body.
// On success the verified phone is stored in request locals.
func BearerAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			// Not SendStatus: that would write the status text as the body.
			return c.Status(http.StatusUnauthorized).Send(nil)
		}

		id, err := auth.VerifyToken(token, secret)
		if err != nil {
			return c.Status(http.StatusForbidden).Send(nil)
		}

		c.Locals(auth.IdentityKey, id.Phone)
		return c.Next()
	}
}
