package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSubmitReport_WithoutAuditor(t *testing.T) {
	app, dir := newFieldApp(t, "")

	resp, body := doRequest(t, app, "POST", "/api/report",
		`{"roomId":"101","cleanerId":"c9","tasks":{"bed":{"status":"done","score":"5"}}}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, gjson.Get(body, "ok").Bool())
	assert.False(t, gjson.Get(body, "sent_to_auditor").Bool())
	assert.True(t, gjson.Get(body, "send_error").Exists())
	assert.Equal(t, "", gjson.Get(body, "send_error").String())

	reportID := gjson.Get(body, "report_id").String()
	filename := gjson.Get(body, "filename").String()
	assert.Regexp(t, `^[0-9a-f]{12}$`, reportID)
	assert.Equal(t, "cleaning_report_"+reportID+".txt", filename)
	assert.Equal(t, "/reports/"+filename, gjson.Get(body, "download_url").String())

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	assert.Contains(t, lines, "roomId: 101")
	assert.Contains(t, lines, "- id: bed")
	assert.Contains(t, lines, "  status: done")
	assert.Contains(t, lines, "  score: 5")
}

func TestSubmitReport_EmptyAndMalformedBodies(t *testing.T) {
	app, dir := newFieldApp(t, "")

	for _, body := range []string{"", "not json", `["x"]`} {
		resp, out := doRequest(t, app, "POST", "/api/report", body)
		require.Equal(t, http.StatusOK, resp.StatusCode, body)
		assert.True(t, gjson.Get(out, "ok").Bool())

		data, err := os.ReadFile(filepath.Join(dir, gjson.Get(out, "filename").String()))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(string(data), "\ntasks:\n"))
	}
}

func TestSubmitReport_ForwardsToAuditor(t *testing.T) {
	auditorURL, auditorDir := serveAuditor(t)

	app, dir := newFieldApp(t, auditorURL+"/api/receive_report")
	resp, body := doRequest(t, app, "POST", "/api/report", `{"roomId":"202","totalScore":90}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, gjson.Get(body, "sent_to_auditor").Bool())
	assert.Equal(t, "", gjson.Get(body, "send_error").String())

	filename := gjson.Get(body, "filename").String()
	local, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	remote, err := os.ReadFile(filepath.Join(auditorDir, filename))
	require.NoError(t, err)
	assert.Equal(t, string(local), string(remote))
}

func TestSubmitReport_ForwardFailure(t *testing.T) {
	auditor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer auditor.Close()

	app, dir := newFieldApp(t, auditor.URL)
	resp, body := doRequest(t, app, "POST", "/api/report", `{"roomId":"303"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, gjson.Get(body, "ok").Bool())
	assert.False(t, gjson.Get(body, "sent_to_auditor").Bool())
	assert.Equal(t, "HTTP 503: Service Unavailable", gjson.Get(body, "send_error").String())
	assert.FileExists(t, filepath.Join(dir, gjson.Get(body, "filename").String()))
}

func TestFieldDownloadReport(t *testing.T) {
	app, _ := newFieldApp(t, "")
	_, body := doRequest(t, app, "POST", "/api/report", `{"roomId":"404"}`)
	filename := gjson.Get(body, "filename").String()

	resp, content := doRequest(t, app, "GET", "/reports/"+filename, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), filename)
	assert.True(t, strings.HasPrefix(content, "CLEANING_REPORT_V1\n"))

	resp, _ = doRequest(t, app, "GET", "/reports/missing.txt", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/reports/..%2F..%2Fetc%2Fpasswd", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFieldIndexAndTasks(t *testing.T) {
	app, _ := newFieldApp(t, "")

	resp, page := doRequest(t, app, "GET", "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, page, "Bed making")

	resp, body := doRequest(t, app, "GET", "/api/tasks", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(6), gjson.Get(body, "tasks.#").Int())
	assert.Equal(t, "trash", gjson.Get(body, "tasks.0.id").String())
}
