package history

import (
	"context"
	"errors"

	"botc-assets/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Reader is the read side of the ledger.
type Reader interface {
	List(ctx context.Context, limit int) ([]Run, error)
	Get(ctx context.Context, id string) (Run, error)
}

// Handler serves the ledger over HTTP.
type Handler struct {
	reader Reader
	logger *zap.Logger
}

// NewHandler creates a handler.
func NewHandler(reader Reader, logger *zap.Logger) *Handler {
	return &Handler{reader: reader, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
}

// HandleList lists recent runs.
// @Summary List Runs
// @Description Returns the most recent fetch runs with their per-category results, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} history.Run
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	runs, err := h.reader.List(c.Context(), c.QueryInt("limit", DefaultLimit))
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if runs == nil {
		runs = []Run{}
	}
	return c.JSON(runs)
}

// HandleGet returns one run.
// @Summary Get Run
// @Description Returns one fetch run by id.
// @Tags history
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} history.Run
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	run, err := h.reader.Get(c.Context(), c.Params("id"))
	if errors.Is(err, ErrRunNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Failed to get run", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}
