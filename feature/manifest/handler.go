package manifest

import (
	"errors"

	"botc-assets/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the manifest.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the manifest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/manifest")
	group.Get("/", h.HandleSummary)
	group.Get("/scripts", h.HandleScripts)
	group.Get("/scripts/:pk", h.HandleScript)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNoManifest) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Failed to read manifest", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// HandleSummary returns the manifest summary.
// @Summary Manifest Summary
// @Description Returns the last remote update time and the number of scripts per source.
// @Tags manifest
// @Produce json
// @Success 200 {object} manifest.Summary
// @Failure 404 {object} map[string]string "Manifest not built"
// @Router /manifest [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	sum, err := h.service.Summary()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sum)
}

// HandleScripts lists the scripts of the manifest.
// @Summary List Scripts
// @Description Returns the merged scripts, optionally filtered by source (remote, extra, homebrew).
// @Tags manifest
// @Produce json
// @Param source query string false "Source filter"
// @Success 200 {array} record.Record
// @Failure 404 {object} map[string]string "Manifest not built"
// @Router /manifest/scripts [get]
func (h *Handler) HandleScripts(c *fiber.Ctx) error {
	list, err := h.service.Scripts(c.Query("source"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(list)
}

// HandleScript returns one script.
// @Summary Get Script
// @Description Returns one script of the manifest by primary key.
// @Tags manifest
// @Produce json
// @Param pk path string true "Script primary key"
// @Success 200 {object} record.Record
// @Failure 404 {object} map[string]string "Not Found"
// @Router /manifest/scripts/{pk} [get]
func (h *Handler) HandleScript(c *fiber.Ctx) error {
	r, ok, err := h.service.Script(c.Params("pk"))
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "script not found"})
	}
	return c.JSON(r)
}
