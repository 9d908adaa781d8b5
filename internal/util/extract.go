package util

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fadilmartias/room-cleaning-report/internal/model"
)

const (
	// MetaScanLines bounds how far into a report ExtractMeta reads.
	MetaScanLines = 40
	// MetaMaxLineBytes bounds a single scanned line. A longer line ends the
	// scan.
	MetaMaxLineBytes = 64 * 1024
)

// ExtractMeta pulls roomId, cleanerId, totalScore and finishedAt from the
// first MetaScanLines lines of the report at path. It never fails: an
// unreadable file yields whatever was found before the error.
func ExtractMeta(path string) model.ReportMeta {
	var meta model.ReportMeta

	f, err := os.Open(path)
	if err != nil {
		return meta
	}
	defer f.Close()

	ScanMeta(f, &meta)
	return meta
}

// ScanMeta fills meta from r, stopping after MetaScanLines lines, at EOF, at
// the first read error or at a line longer than MetaMaxLineBytes.
func ScanMeta(r io.Reader, meta *model.ReportMeta) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MetaMaxLineBytes)
	for i := 0; i < MetaScanLines && scanner.Scan(); i++ {
		applyMetaLine(meta, strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), "\uFFFD")))
	}
}

func applyMetaLine(meta *model.ReportMeta, line string) {
	switch {
	case strings.HasPrefix(line, "roomId:"):
		meta.RoomID = metaValue(line)
	case strings.HasPrefix(line, "cleanerId:"):
		meta.CleanerID = metaValue(line)
	case strings.HasPrefix(line, "totalScore:"):
		meta.TotalScore = metaValue(line)
	case strings.HasPrefix(line, "finishedAt:"):
		meta.FinishedAt = metaValue(line)
	}
}

// metaValue returns everything after the first colon, trimmed.
func metaValue(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(value)
}
