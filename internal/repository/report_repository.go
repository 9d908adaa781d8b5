package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fadilmartias/room-cleaning-report/internal/model"
	"github.com/fadilmartias/room-cleaning-report/internal/util"
)

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrInvalidReportName = errors.New("invalid report name")
)

// ReportRepository keeps reports as plain files in a single directory.
// Writes to an existing name overwrite it; there is no locking.
type ReportRepository struct {
	dir string
}

func NewReportRepository(dir string) (*ReportRepository, error) {
	if dir == "" {
		return nil, errors.New("report directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report directory %s: %w", dir, err)
	}
	return &ReportRepository{dir: dir}, nil
}

func (r *ReportRepository) Dir() string {
	return r.dir
}

// Save writes content under name. name must already be a bare filename.
func (r *ReportRepository) Save(name, content string) error {
	path, err := r.resolve(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", name, err)
	}
	return nil
}

// Path returns the on-disk path of an existing report file. Names that are
// missing, not regular files, or would leave the directory give
// ErrReportNotFound.
func (r *ReportRepository) Path(name string) (string, error) {
	path, err := r.resolve(name)
	if err != nil {
		return "", ErrReportNotFound
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrReportNotFound
		}
		return "", fmt.Errorf("stat report %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return "", ErrReportNotFound
	}
	return path, nil
}

// Read returns the whole report, with invalid UTF-8 replaced.
func (r *ReportRepository) Read(name string) (string, error) {
	path, err := r.Path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read report %s: %w", name, err)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

// Meta extracts the summary of a stored report. Failures give empty fields.
func (r *ReportRepository) Meta(name string) model.ReportMeta {
	path, err := r.resolve(name)
	if err != nil {
		return model.ReportMeta{}
	}
	return util.ExtractMeta(path)
}

// ModTime returns the formatted modification time, or "" if the file
// cannot be stat'ed.
func (r *ReportRepository) ModTime(name string) string {
	path, err := r.resolve(name)
	if err != nil {
		return ""
	}
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return util.FormatModTime(info.ModTime())
}

// List returns report filenames in reverse lexical order. Given the
// id/timestamp naming this puts recent reports first, but it is not a
// chronological sort.
func (r *ReportRepository) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !util.IsReportFilename(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func (r *ReportRepository) resolve(name string) (string, error) {
	if !isBareFilename(name) {
		return "", ErrInvalidReportName
	}
	return filepath.Join(r.dir, name), nil
}

func isBareFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`+"\x00")
}
