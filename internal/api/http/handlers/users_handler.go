package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/taskdesk/ticket-api/internal/api/dto"
	"github.com/taskdesk/ticket-api/internal/domain"
	"github.com/taskdesk/ticket-api/internal/service"
	apperrors "github.com/taskdesk/ticket-api/pkg/util/errorutil"
)

// UsersHandler manages user account endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// List GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UserViewsFrom(users)})
}

// ListTickets GET /users/:id/tickets.
func (h *UsersHandler) ListTickets(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	tickets, err := h.service.ListTicketsOwnedBy(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketViewsFrom(tickets)})
}

// Create POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	input, err := parseUserBody(c)
	if err != nil {
		return err
	}
	user, err := h.service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.UserViewFrom(user)})
}

// Update PUT /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	input, err := parseUserBody(c)
	if err != nil {
		return err
	}
	user, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UserViewFrom(user)})
}

func parseUserBody(c *fiber.Ctx) (service.UserInput, error) {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return service.UserInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return service.UserInput{}, apperrors.NewValidationError("username and password required", nil)
	}
	if req.Roles == "" {
		req.Roles = domain.RoleUser
	}
	if !req.Roles.Valid() {
		return service.UserInput{}, apperrors.NewValidationError("invalid roles", map[string]any{"roles": req.Roles})
	}
	return service.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	}, nil
}
