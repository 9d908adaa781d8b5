package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// ReportVersionTag is the first line of every serialized report.
	ReportVersionTag = "CLEANING_REPORT_V1"
	// ReportExt is the file extension shared by both services' storage.
	ReportExt = ".txt"

	reportIDLength = 12
)

// ReportTask is one checklist entry. Every field is free-form text.
type ReportTask struct {
	ID        string
	Status    string
	Score     string
	CheckedAt string
	Notes     string
}

// CleaningReport is a single room-cleaning submission. Tasks keep the order
// in which the client sent them.
type CleaningReport struct {
	ReportID        string
	RoomID          string
	CleanerID       string
	StartedAt       string
	FinishedAt      string
	DurationSeconds string
	TotalScore      string
	Tasks           []ReportTask
}

// NewReportID returns 12 lowercase hex characters taken from a random UUID.
func NewReportID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:reportIDLength]
}

// ReportFilename is the name a field report is stored and forwarded under.
func ReportFilename(reportID string) string {
	return fmt.Sprintf("cleaning_report_%s%s", reportID, ReportExt)
}

func (r *CleaningReport) Filename() string {
	return ReportFilename(r.ReportID)
}

// Text renders the report in the CLEANING_REPORT_V1 line format. The output
// depends only on the report's fields.
func (r *CleaningReport) Text() string {
	var b strings.Builder
	b.WriteString(ReportVersionTag + "\n")
	writeField(&b, "", "report_id", r.ReportID)
	writeField(&b, "", "roomId", r.RoomID)
	writeField(&b, "", "cleanerId", r.CleanerID)
	writeField(&b, "", "startedAt", r.StartedAt)
	writeField(&b, "", "finishedAt", r.FinishedAt)
	writeField(&b, "", "durationSeconds", r.DurationSeconds)
	writeField(&b, "", "totalScore", r.TotalScore)
	b.WriteString("\n")
	b.WriteString("tasks:\n")
	for _, t := range r.Tasks {
		writeField(&b, "- ", "id", t.ID)
		writeField(&b, "  ", "status", t.Status)
		writeField(&b, "  ", "score", t.Score)
		writeField(&b, "  ", "checkedAt", t.CheckedAt)
		writeField(&b, "  ", "notes", t.Notes)
	}
	return b.String()
}

func writeField(b *strings.Builder, indent, key, value string) {
	b.WriteString(indent)
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
