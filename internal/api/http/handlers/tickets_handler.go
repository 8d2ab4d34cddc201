package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/taskdesk/ticket-api/internal/api/dto"
	"github.com/taskdesk/ticket-api/internal/domain"
	"github.com/taskdesk/ticket-api/internal/service"
	apperrors "github.com/taskdesk/ticket-api/pkg/util/errorutil"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// List GET /tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketViewsFrom(tickets)})
}

// Get GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ticket, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketViewFrom(ticket)})
}

// Create POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	input, err := parseTicketBody(c, true)
	if err != nil {
		return err
	}
	ticket, err := h.service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.TicketViewFrom(ticket)})
}

// Update PUT /tickets/:id.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	input, err := parseTicketBody(c, false)
	if err != nil {
		return err
	}
	ticket, err := h.service.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketViewFrom(ticket)})
}

// Assign PUT /tickets/:id/assign/:userId.
func (h *TicketsHandler) Assign(c *fiber.Ctx) error {
	ticketID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	ticket, err := h.service.Assign(c.Context(), ticketID, userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketViewFrom(ticket)})
}

// Delete DELETE /tickets/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fmt.Sprintf("ticket deleted, id: %d", id)})
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"param": param})
	}
	return id, nil
}

func parseTicketBody(c *fiber.Ctx, create bool) (service.TicketInput, error) {
	var req dto.TicketRequest
	if err := c.BodyParser(&req); err != nil {
		return service.TicketInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return service.TicketInput{}, apperrors.NewValidationError("title required", nil)
	}
	if create && req.Status == "" {
		req.Status = domain.TicketStatusInProgress
	}
	if !req.Status.Valid() {
		return service.TicketInput{}, apperrors.NewValidationError("invalid status", map[string]any{"status": req.Status})
	}
	return service.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		OwnerID:     req.OwnerID,
	}, nil
}
