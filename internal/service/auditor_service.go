package service

import (
	"context"
	"fmt"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/fadilmartias/room-cleaning-report/internal/dto"
	"github.com/go-resty/resty/v2"
)

// DefaultForwardTimeout bounds the single forwarding call.
const DefaultForwardTimeout = 5 * time.Second

type AuditorServiceInterface interface {
	Enabled() bool
	Forward(ctx context.Context, filename, content string) error
}

// AuditorService posts finished reports to the auditor's receive endpoint.
// It makes exactly one attempt per report.
type AuditorService struct {
	Endpoint string
	client   *resty.Client
	log      logger.Logger
}

func NewAuditorService(endpoint string, timeout time.Duration) *AuditorService {
	if timeout <= 0 {
		timeout = DefaultForwardTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &AuditorService{
		Endpoint: endpoint,
		client:   client,
		log:      logger.New("auditorService"),
	}
}

// Enabled reports whether an endpoint is configured.
func (s *AuditorService) Enabled() bool {
	return s.Endpoint != ""
}

// Forward sends {filename, content} to the auditor. Transport errors,
// timeouts and 4xx/5xx replies are all returned as errors.
func (s *AuditorService) Forward(ctx context.Context, filename, content string) error {
	log := s.log.Function("Forward")
	if !s.Enabled() {
		return fmt.Errorf("auditor endpoint not configured")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(dto.ForwardReportRequest{Filename: filename, Content: content}).
		Post(s.Endpoint)
	if err != nil {
		log.Er("failed to forward report", err, "filename", filename, "endpoint", s.Endpoint)
		return err
	}
	if resp.IsError() {
		err := fmt.Errorf("HTTP %d: %s", resp.StatusCode(), statusText(resp))
		log.Er("auditor rejected report", err, "filename", filename)
		return err
	}

	log.Info("Forwarded report", "filename", filename, "status", resp.StatusCode())
	return nil
}

func statusText(resp *resty.Response) string {
	status := resp.Status()
	// net/http formats Status as "500 Internal Server Error".
	if len(status) > 4 && status[3] == ' ' {
		return status[4:]
	}
	return status
}
