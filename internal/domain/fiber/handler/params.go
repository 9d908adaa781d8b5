package handler

import (
	"errors"
	"io/fs"
	"net/url"
	"os"

	"github.com/fadilmartias/room-cleaning-report/internal/repository"
	"github.com/gofiber/fiber/v2"
)

// filenameParam returns the decoded :filename route parameter.
func filenameParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("filename"))
	if err != nil || name == "" {
		return "", fiber.ErrNotFound
	}
	return name, nil
}

// notFoundOr maps a missing report to 404 and passes other errors through.
func notFoundOr(err error) error {
	if errors.Is(err, repository.ErrReportNotFound) {
		return fiber.ErrNotFound
	}
	return err
}

// sendReport streams a stored report as an attachment. The file is opened
// per request so an overwritten report is never served stale.
func sendReport(c *fiber.Ctx, resolve func(string) (string, error)) error {
	name, err := filenameParam(c)
	if err != nil {
		return err
	}
	path, err := resolve(name)
	if err != nil {
		return notFoundOr(err)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fiber.ErrNotFound
		}
		return err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}
	c.Attachment(name)
	return c.SendStream(f, int(info.Size()))
}
