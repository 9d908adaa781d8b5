package util

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cleaning_report_abc.txt", "cleaning_report_abc.txt"},
		{"../../evil.txt", ".._.._evil.txt"},
		{`..\..\evil.txt`, ".._.._evil.txt"},
		{"room 101.txt", "room_101.txt"},
		{"部屋.txt", "__.txt"},
		{"a/b\x00c.txt", "a_b_c.txt"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeFilename(tc.input))
		})
	}
}

func TestReceivedFilename(t *testing.T) {
	now := time.Date(2024, 1, 31, 23, 59, 5, 0, time.Local)
	safe := regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

	testCases := []struct {
		name      string
		requested string
		expected  string
	}{
		{"kept", "cleaning_report_0123456789ab.txt", "cleaning_report_0123456789ab.txt"},
		{"trimmed", "  report.txt  ", "report.txt"},
		{"empty", "", "cleaning_report_20240131_235905.txt"},
		{"blank", "   ", "cleaning_report_20240131_235905.txt"},
		{"wrong extension", "report.pdf", "cleaning_report_20240131_235905.txt"},
		{"traversal", "../../evil.txt", ".._.._evil.txt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ReceivedFilename(tc.requested, now)
			assert.Equal(t, tc.expected, got)
			assert.Regexp(t, safe, got)
		})
	}
}

func TestFormatModTime(t *testing.T) {
	ts := time.Date(2024, 3, 4, 5, 6, 7, 0, time.Local)
	assert.Equal(t, "2024-03-04 05:06:07", FormatModTime(ts))
}
