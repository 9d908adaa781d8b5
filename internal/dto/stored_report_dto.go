package dto

import (
	"github.com/fadilmartias/room-cleaning-report/internal/model"
	"github.com/fadilmartias/room-cleaning-report/internal/response"
)

// ReportListResponse backs GET /api/reports on the auditor.
type ReportListResponse struct {
	OK         bool                 `json:"ok"`
	Reports    []model.StoredReport `json:"reports"`
	Pagination *response.Pagination `json:"pagination"`
}
