package handler

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fadilmartias/room-cleaning-report/internal/repository"
	"github.com/fadilmartias/room-cleaning-report/internal/server"
	"github.com/fadilmartias/room-cleaning-report/internal/service"
	"github.com/fadilmartias/room-cleaning-report/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newFieldApp(t *testing.T, endpoint string) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := repository.NewReportRepository(dir)
	require.NoError(t, err)
	auditor := service.NewAuditorService(endpoint, service.DefaultForwardTimeout)
	uc := usecase.NewFieldUsecase(repo, auditor)

	app := server.New(server.Options{AppName: "field-test"})
	NewFieldHandler(uc, "field-test", auditor.Enabled(), nil).RegisterRoutes(app)
	return app, dir
}

func newAuditorApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := repository.NewReportRepository(dir)
	require.NoError(t, err)
	uc := usecase.NewAuditorUsecase(repo)

	app := server.New(server.Options{AppName: "auditor-test"})
	NewAuditorHandler(uc, "auditor-test").RegisterRoutes(app)
	return app, dir
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

// serveAuditor runs an auditor app on a loopback listener and returns its
// base URL.
func serveAuditor(t *testing.T) (string, string) {
	t.Helper()
	app, dir := newAuditorApp(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})
	return "http://" + ln.Addr().String(), dir
}
