package member

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the member directory endpoints.
type Handler struct {
	svc      *Service
	validate *validator.Validate
}

// NewHandler constructs a member HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, validate: validator.New()}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles member onboarding.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "name, phone and password are required")
	}

	summary, err := h.svc.Register(c.UserContext(), Member{Name: req.Name, Phone: req.Phone, Password: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrPhoneExists):
			return fiber.NewError(http.StatusConflict, ErrPhoneExists.Error())
		default:
			// Registration historically exposes the storage detail in the body.
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error":   "registration failed",
				"details": err.Error(),
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "member registered",
		"member":  summary,
	})
}

// Get returns the full stored record for the phone in the path.
func (h *Handler) Get(c *fiber.Ctx) error {
	m, err := h.svc.GetByPhone(c.UserContext(), c.Params("phone"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, ErrNotFound.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, "storage error")
	}
	return c.JSON(m)
}

type updateRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Update applies a partial update keyed by the phone in the path.
func (h *Handler) Update(c *fiber.Ctx) error {
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err := h.svc.Update(c.UserContext(), c.Params("phone"), Patch(req))
	if err != nil {
		switch {
		case errors.Is(err, ErrNothingToUpdate):
			return fiber.NewError(http.StatusBadRequest, ErrNothingToUpdate.Error())
		case errors.Is(err, ErrPhoneExists):
			return fiber.NewError(http.StatusConflict, ErrPhoneExists.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, "storage error")
		}
	}
	return c.JSON(fiber.Map{"message": "member updated"})
}
