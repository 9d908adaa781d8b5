package usecase

import (
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/fadilmartias/room-cleaning-report/internal/dto"
	"github.com/fadilmartias/room-cleaning-report/internal/model"
	"github.com/fadilmartias/room-cleaning-report/internal/repository"
	"github.com/fadilmartias/room-cleaning-report/internal/response"
	"github.com/fadilmartias/room-cleaning-report/internal/util"
)

type AuditorUsecase struct {
	reportRepo *repository.ReportRepository
	now        func() time.Time
	log        logger.Logger
}

func NewAuditorUsecase(reportRepo *repository.ReportRepository) *AuditorUsecase {
	return &AuditorUsecase{
		reportRepo: reportRepo,
		now:        time.Now,
		log:        logger.New("auditorUsecase"),
	}
}

// Receive stores a forwarded report under a sanitized name, overwriting any
// report already stored under that name. Content is not validated.
func (uc *AuditorUsecase) Receive(req dto.ForwardReportRequest) (dto.ReceiveReportResponse, error) {
	log := uc.log.Function("Receive")

	filename := util.ReceivedFilename(req.Filename, uc.now())
	if err := uc.reportRepo.Save(filename, req.Content); err != nil {
		return dto.ReceiveReportResponse{}, log.Err("failed to store received report", err, "filename", filename)
	}
	log.Info("Received report", "requested", req.Filename, "savedAs", filename, "bytes", len(req.Content))

	return dto.ReceiveReportResponse{
		OK:      true,
		SavedAs: filename,
		ViewURL: "/reports/" + filename,
	}, nil
}

// List returns every stored report, newest name first. A report whose time
// or metadata cannot be read still appears, with empty fields.
func (uc *AuditorUsecase) List() ([]model.StoredReport, error) {
	names, err := uc.reportRepo.List()
	if err != nil {
		return nil, uc.log.Function("List").Err("failed to list reports", err)
	}
	reports := make([]model.StoredReport, 0, len(names))
	for _, name := range names {
		reports = append(reports, uc.describe(name))
	}
	return reports, nil
}

// ListPage is List restricted to one page.
func (uc *AuditorUsecase) ListPage(page, pageSize int) ([]model.StoredReport, *response.Pagination, error) {
	names, err := uc.reportRepo.List()
	if err != nil {
		return nil, nil, uc.log.Function("ListPage").Err("failed to list reports", err)
	}
	pagination := response.NewPagination(page, pageSize, len(names))
	start, end := pagination.Window()

	reports := make([]model.StoredReport, 0, end-start)
	for _, name := range names[start:end] {
		reports = append(reports, uc.describe(name))
	}
	return reports, pagination, nil
}

// ReportView is what the detail page shows for one stored report.
type ReportView struct {
	Filename string
	Text     string
	Meta     model.ReportMeta
}

func (uc *AuditorUsecase) View(filename string) (ReportView, error) {
	text, err := uc.reportRepo.Read(filename)
	if err != nil {
		return ReportView{}, err
	}
	return ReportView{
		Filename: filename,
		Text:     text,
		Meta:     uc.reportRepo.Meta(filename),
	}, nil
}

// ReportPath resolves a stored report for download.
func (uc *AuditorUsecase) ReportPath(filename string) (string, error) {
	return uc.reportRepo.Path(filename)
}

func (uc *AuditorUsecase) describe(name string) model.StoredReport {
	return model.StoredReport{
		Filename: name,
		ModTime:  uc.reportRepo.ModTime(name),
		Meta:     uc.reportRepo.Meta(name),
	}
}
