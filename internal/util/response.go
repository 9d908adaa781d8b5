package util

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
)

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	OK         bool   `json:"ok"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// ErrorResponse sends the standard JSON error body. Outside production the
// first error's message and a stack trace are included.
func ErrorResponse(c *fiber.Ctx, production bool, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		OK:      false,
		Message: params.Message,
	}
	if params.Details != nil {
		response.Details = params.Details
	}
	if !production {
		if len(errs) > 0 && errs[0] != nil {
			response.DevMessage = errs[0].Error()
			response.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			response.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			response.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(response)
}
