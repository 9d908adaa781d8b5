package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fadilmartias/room-cleaning-report/internal/model"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9_.-] with '_'.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// IsReportFilename reports whether name carries the report extension.
func IsReportFilename(name string) bool {
	return strings.HasSuffix(name, model.ReportExt)
}

// TimestampedReportFilename names a received report that arrived without a
// usable filename, e.g. cleaning_report_20240131_235959.txt.
func TimestampedReportFilename(now time.Time) string {
	return fmt.Sprintf("cleaning_report_%s%s", now.Format("20060102_150405"), model.ReportExt)
}

// ReceivedFilename picks the on-disk name for a received report: the
// caller's name when it ends in .txt, otherwise a timestamped one, then
// sanitized.
func ReceivedFilename(requested string, now time.Time) string {
	name := strings.TrimSpace(requested)
	if name == "" || !IsReportFilename(name) {
		name = TimestampedReportFilename(now)
	}
	return SanitizeFilename(name)
}

// FormatModTime renders a file time the way the listing shows it.
func FormatModTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
