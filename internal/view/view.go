// Package view renders the HTML pages of both services from embedded
// templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	FieldIndex    = "field_index.html"
	AuditorIndex  = "auditor_index.html"
	AuditorReport = "auditor_report.html"
)

// Render executes the named template into the response as text/html.
func Render(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
