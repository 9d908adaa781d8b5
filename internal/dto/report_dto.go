package dto

import (
	"strings"

	"github.com/fadilmartias/room-cleaning-report/internal/model"
	"github.com/tidwall/gjson"
)

// SubmitReportResponse is the field service's reply to POST /api/report.
type SubmitReportResponse struct {
	OK            bool   `json:"ok"`
	ReportID      string `json:"report_id"`
	Filename      string `json:"filename"`
	DownloadURL   string `json:"download_url"`
	SentToAuditor bool   `json:"sent_to_auditor"`
	SendError     string `json:"send_error"`
}

// ForwardReportRequest is both the body the field service posts to the
// auditor and the body the auditor accepts.
type ForwardReportRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type ReceiveReportResponse struct {
	OK      bool   `json:"ok"`
	SavedAs string `json:"saved_as"`
	ViewURL string `json:"view_url"`
}

// ParseReportSubmission reads a submission body. Missing fields, malformed
// JSON and an empty body all produce empty values; nothing is rejected.
// Tasks keep the key order of the incoming object. A repeated key keeps its
// last value, and a repeated task id keeps the position of its first entry.
func ParseReportSubmission(body []byte) model.CleaningReport {
	root := parseObject(body)
	report := model.CleaningReport{
		RoomID:          lastValue(root, "roomId").String(),
		CleanerID:       lastValue(root, "cleanerId").String(),
		StartedAt:       lastValue(root, "startedAt").String(),
		FinishedAt:      lastValue(root, "finishedAt").String(),
		DurationSeconds: lastValue(root, "durationSeconds").String(),
		TotalScore:      lastValue(root, "totalScore").String(),
	}

	tasks := lastValue(root, "tasks")
	if !tasks.IsObject() {
		return report
	}
	position := make(map[string]int)
	tasks.ForEach(func(key, value gjson.Result) bool {
		task := parseTask(key.String(), value)
		if i, ok := position[task.ID]; ok {
			report.Tasks[i] = task
			return true
		}
		position[task.ID] = len(report.Tasks)
		report.Tasks = append(report.Tasks, task)
		return true
	})
	return report
}

func parseTask(id string, value gjson.Result) model.ReportTask {
	task := model.ReportTask{ID: id}
	if !value.IsObject() {
		return task
	}
	task.Status = lastValue(value, "status").String()
	task.Score = lastValue(value, "score").String()
	task.CheckedAt = lastValue(value, "checkedAt").String()

	// The field UI sends "note"; "notes" takes precedence when both exist.
	notes := lastValue(value, "notes")
	if !notes.Exists() {
		notes = lastValue(value, "note")
	}
	task.Notes = notes.String()
	return task
}

// ParseForwardReport reads a receive body with the same tolerance as
// ParseReportSubmission. The filename is trimmed.
func ParseForwardReport(body []byte) ForwardReportRequest {
	root := parseObject(body)
	return ForwardReportRequest{
		Filename: strings.TrimSpace(lastValue(root, "filename").String()),
		Content:  lastValue(root, "content").String(),
	}
}

func parseObject(body []byte) gjson.Result {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}
	}
	return root
}

// lastValue returns the last member of obj named key. gjson's Get stops at
// the first one.
func lastValue(obj gjson.Result, key string) gjson.Result {
	var found gjson.Result
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found = v
		}
		return true
	})
	return found
}
