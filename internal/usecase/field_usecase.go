package usecase

import (
	"context"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/fadilmartias/room-cleaning-report/internal/dto"
	"github.com/fadilmartias/room-cleaning-report/internal/model"
	"github.com/fadilmartias/room-cleaning-report/internal/repository"
	"github.com/fadilmartias/room-cleaning-report/internal/service"
)

type FieldUsecase struct {
	reportRepo *repository.ReportRepository
	auditor    service.AuditorServiceInterface
	newID      func() string
	log        logger.Logger
}

func NewFieldUsecase(reportRepo *repository.ReportRepository, auditor service.AuditorServiceInterface) *FieldUsecase {
	return &FieldUsecase{
		reportRepo: reportRepo,
		auditor:    auditor,
		newID:      model.NewReportID,
		log:        logger.New("fieldUsecase"),
	}
}

// SerializeReport assigns a fresh id from newID and renders the report.
func SerializeReport(sub model.CleaningReport, newID func() string) (reportID, filename, text string) {
	sub.ReportID = newID()
	return sub.ReportID, sub.Filename(), sub.Text()
}

// Submit stores the serialized report locally and, when an auditor is
// configured, forwards it once. A failed forward is reported in the result
// and never undoes the local write.
func (uc *FieldUsecase) Submit(ctx context.Context, sub model.CleaningReport) (dto.SubmitReportResponse, error) {
	log := uc.log.Function("Submit")

	reportID, filename, text := SerializeReport(sub, uc.newID)
	if err := uc.reportRepo.Save(filename, text); err != nil {
		return dto.SubmitReportResponse{}, log.Err("failed to save report", err, "filename", filename)
	}
	log.Info("Saved report", "filename", filename, "roomId", sub.RoomID, "tasks", len(sub.Tasks))

	result := dto.SubmitReportResponse{
		OK:          true,
		ReportID:    reportID,
		Filename:    filename,
		DownloadURL: "/reports/" + filename,
	}

	if uc.auditor != nil && uc.auditor.Enabled() {
		if err := uc.auditor.Forward(ctx, filename, text); err != nil {
			log.Warn("Forwarding to auditor failed", "filename", filename, "error", err)
			result.SendError = err.Error()
		} else {
			result.SentToAuditor = true
		}
	}

	return result, nil
}

// ReportPath resolves a locally stored report for download.
func (uc *FieldUsecase) ReportPath(filename string) (string, error) {
	return uc.reportRepo.Path(filename)
}

// TaskCatalog returns the cleaning route shown to staff.
func (uc *FieldUsecase) TaskCatalog() []model.CatalogTask {
	return model.TaskCatalog
}
