package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/member-api/member_api/internal/auth"
	"github.com/member-api/member_api/internal/config"
	"github.com/member-api/member_api/internal/member"
	"github.com/member-api/member_api/internal/middleware"
)

// RegisterMemberRoutes wires the member directory and authentication
// endpoints. The profile route must come before the :phone wildcard so the
// literal segment wins.
func RegisterMemberRoutes(r fiber.Router, cfg config.Config, members *member.Handler, authn *auth.Handler) {
	group := r.Group("/member")

	group.Get("/profile", middleware.BearerAuth([]byte(cfg.JWTSecret)), authn.Profile)

	group.Post("/register", members.Register)
	group.Post("/login", authn.Login)
	group.Get("/:phone", members.Get)
	group.Put("/:phone", members.Update)
}
