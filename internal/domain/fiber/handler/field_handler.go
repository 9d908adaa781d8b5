package handler

import (
	"github.com/fadilmartias/room-cleaning-report/internal/config"
	"github.com/fadilmartias/room-cleaning-report/internal/dto"
	"github.com/fadilmartias/room-cleaning-report/internal/middleware"
	"github.com/fadilmartias/room-cleaning-report/internal/usecase"
	"github.com/fadilmartias/room-cleaning-report/internal/view"
	"github.com/gofiber/fiber/v2"
)

type FieldHandler struct {
	uc         *usecase.FieldUsecase
	appName    string
	forwarding bool
	rateLimit  *config.RateLimitConfig
}

func NewFieldHandler(uc *usecase.FieldUsecase, appName string, forwarding bool, rateLimit *config.RateLimitConfig) *FieldHandler {
	return &FieldHandler{uc: uc, appName: appName, forwarding: forwarding, rateLimit: rateLimit}
}

func (h *FieldHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Index)
	app.Get("/api/tasks", h.Tasks)
	app.Post("/api/report", rateLimiter(h.rateLimit), h.SubmitReport)
	app.Get("/reports/:filename", h.DownloadReport)
}

func (h *FieldHandler) Index(c *fiber.Ctx) error {
	return view.Render(c, view.FieldIndex, fiber.Map{
		"AppName":    h.appName,
		"Forwarding": h.forwarding,
		"Tasks":      h.uc.TaskCatalog(),
	})
}

func (h *FieldHandler) Tasks(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":    true,
		"tasks": h.uc.TaskCatalog(),
	})
}

// SubmitReport accepts any body; missing or malformed JSON is an empty
// submission.
func (h *FieldHandler) SubmitReport(c *fiber.Ctx) error {
	sub := dto.ParseReportSubmission(c.Body())

	result, err := h.uc.Submit(c.UserContext(), sub)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *FieldHandler) DownloadReport(c *fiber.Ctx) error {
	return sendReport(c, h.uc.ReportPath)
}

func rateLimiter(cfg *config.RateLimitConfig) fiber.Handler {
	if cfg == nil {
		return middleware.RateLimiter(0, 0)
	}
	return middleware.RateLimiter(cfg.Max, cfg.Window)
}
