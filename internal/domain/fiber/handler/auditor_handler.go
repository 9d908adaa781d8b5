package handler

import (
	"github.com/fadilmartias/room-cleaning-report/internal/dto"
	"github.com/fadilmartias/room-cleaning-report/internal/response"
	"github.com/fadilmartias/room-cleaning-report/internal/usecase"
	"github.com/fadilmartias/room-cleaning-report/internal/view"
	"github.com/gofiber/fiber/v2"
)

type AuditorHandler struct {
	uc      *usecase.AuditorUsecase
	appName string
}

func NewAuditorHandler(uc *usecase.AuditorUsecase, appName string) *AuditorHandler {
	return &AuditorHandler{uc: uc, appName: appName}
}

func (h *AuditorHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Index)
	app.Get("/api/reports", h.ListReports)
	// Every forward arrives from the field service's address, so receive is
	// not rate limited.
	app.Post("/api/receive_report", h.ReceiveReport)
	app.Get("/reports/:filename", h.ViewReport)
	app.Get("/download/:filename", h.DownloadReport)
}

func (h *AuditorHandler) Index(c *fiber.Ctx) error {
	reports, err := h.uc.List()
	if err != nil {
		return err
	}
	return view.Render(c, view.AuditorIndex, fiber.Map{
		"AppName": h.appName,
		"Reports": reports,
	})
}

func (h *AuditorHandler) ListReports(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", response.DefaultPageSize)

	reports, pagination, err := h.uc.ListPage(page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(dto.ReportListResponse{
		OK:         true,
		Reports:    reports,
		Pagination: pagination,
	})
}

func (h *AuditorHandler) ReceiveReport(c *fiber.Ctx) error {
	req := dto.ParseForwardReport(c.Body())

	result, err := h.uc.Receive(req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *AuditorHandler) ViewReport(c *fiber.Ctx) error {
	name, err := filenameParam(c)
	if err != nil {
		return err
	}
	report, err := h.uc.View(name)
	if err != nil {
		return notFoundOr(err)
	}
	return view.Render(c, view.AuditorReport, report)
}

func (h *AuditorHandler) DownloadReport(c *fiber.Ctx) error {
	return sendReport(c, h.uc.ReportPath)
}
