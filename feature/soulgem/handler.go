package soulgem

import (
	"strconv"

	"yastm-generator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const contentTypeTOML = "application/toml; charset=utf-8"

// Handler handles HTTP requests for soul gem configuration.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the soul gem routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/soulgems")
	group.Get("/preview", h.HandlePreview)
	group.Post("/generate", h.HandleGenerate)
}

// HandlePreview renders the configuration the next run would write, without
// persisting anything. The X-Soul-Gem-Groups header carries the group count;
// 204 means no group qualified.
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Preview(c.UserContext())
	if err != nil {
		l.Error("Soul gem preview failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set("X-Soul-Gem-Groups", strconv.Itoa(out.Report.Emitted))
	if len(out.Config) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	c.Set(fiber.HeaderContentType, contentTypeTOML)
	return c.Send(out.Config)
}

// HandleGenerate runs the generator, saves the patch and syncs the configuration
// file. `?dry_run=true` turns it into a preview that reports as JSON.
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.Generate(c.UserContext(), Options{DryRun: c.QueryBool("dry_run", false)})
	if err != nil {
		l.Error("Soul gem generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Soul gem generation finished",
		zap.Int("created", out.Report.Created),
		zap.Int("relinked", out.Report.Relinked),
		zap.String("sync", string(out.Sync)),
	)
	return c.JSON(out)
}
