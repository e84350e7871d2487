package auth

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/member-api/member_api/internal/member"
)

// Handler exposes login and the token-guarded profile endpoint.
type Handler struct {
	svc      *Service
	validate *validator.Validate
}

// NewHandler constructs an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

type loginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login validates credentials and returns the member summary.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "phone and password are required")
	}

	summary, err := h.svc.Login(c.UserContext(), req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrValidation):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrInvalidCredentials):
			return fiber.NewError(http.StatusUnauthorized, ErrInvalidCredentials.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, "login failed")
		}
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"member":  summary,
	})
}

// Profile returns the summary for the identity stored by the bearer-auth
// middleware.
func (h *Handler) Profile(c *fiber.Ctx) error {
	phone, _ := c.Locals(IdentityKey).(string)
	if phone == "" {
		return c.Status(http.StatusUnauthorized).Send(nil)
	}

	summary, err := h.svc.Profile(c.UserContext(), Identity{Phone: phone})
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, member.ErrNotFound.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, "storage error")
	}
	return c.JSON(summary)
}
