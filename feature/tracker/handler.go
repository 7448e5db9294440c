package tracker

import (
	"errors"

	"equipment-tracker/core/logger"
	"equipment-tracker/feature/tracker/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the tracker.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the tracker routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api", h.HandleRead)
	app.Post("/api", h.HandleWrite)
}

// HandleRead returns current inventory levels and recent transactions.
// @Summary Read inventory state
// @Description Reconciles inventory totals with the transaction log and returns per-device levels plus the 50 most recent transactions, newest first.
// @Tags tracker
// @Produce json
// @Success 200 {object} models.ReadResponse "Inventory snapshot"
// @Failure 503 {object} models.WriteResponse "Store unavailable"
// @Router /api [get]
func (h *Handler) HandleRead(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	snapshot, err := h.service.Read(c.Context())
	if err != nil {
		l.Error("Read failed", zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(models.ReadResponse{
		Status:        "success",
		Data:          snapshot.Data,
		InventoryList: snapshot.List,
		Transactions:  snapshot.Transactions,
	})
}

// HandleWrite dispatches an action-tagged write request.
// @Summary Submit a write action
// @Description Records a new loan (addTransaction), overwrites a device total (updateInventory), or transitions a transaction's status (updateStatus).
// @Tags tracker
// @Accept json
// @Produce json
// @Param request body models.WriteRequest true "Action-tagged payload"
// @Success 200 {object} models.WriteResponse "Acknowledgment"
// @Failure 400 {object} models.WriteResponse "Invalid argument or unknown action"
// @Failure 404 {object} models.WriteResponse "Row not found"
// @Router /api [post]
func (h *Handler) HandleWrite(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req models.WriteRequest
	if err := c.BodyParser(&req); err != nil {
		l.Warn("Malformed write body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.WriteResponse{
			Status:  "error",
			Message: "Malformed request body",
		})
	}

	var err error
	var message string
	switch req.Action {
	case models.ActionAddTransaction:
		err = h.service.AddTransaction(c.Context(), &req)
		message = "Transaction saved successfully."
	case models.ActionUpdateInventory:
		err = h.service.UpdateInventory(c.Context(), req.Device, req.NewTotal)
		message = "Inventory updated."
	case models.ActionUpdateStatus:
		err = h.service.UpdateStatus(c.Context(), req.Row, req.Status)
		message = "Status updated."
	default:
		l.Warn("Unknown action", zap.String("action", req.Action))
		return c.Status(fiber.StatusBadRequest).JSON(models.WriteResponse{
			Status:  "error",
			Message: "Unknown action",
		})
	}

	if err != nil {
		l.Error("Write failed", zap.String("action", req.Action), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(models.WriteResponse{Status: "success", Message: message})
}

// errorResponse shapes a service error into the structured error body.
// Faults are never propagated raw to the caller.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidArgument):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(models.WriteResponse{
		Status:  "error",
		Message: err.Error(),
	})
}
