package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/presenters"
	"github.com/haidar-allaw/red-cross-sub000/pkg/report"
)

type (
	ReportHandler interface {
		GetStatistics(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
	}
)

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandler{reportService: reportService}
}

func (h *reportHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.reportService.GetStatistics(c.Context())
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetStatistics, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStatistics)
}
