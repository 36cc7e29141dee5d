// Package export serializes a canonical dashboard snapshot into the CSV and
// spreadsheet downloads. Both exporters read only the snapshot, never the
// raw payload, and produce identical output for identical snapshots.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ignite/campaign-dashboard/internal/datanorm"
)

// Format names an export output.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Content types for the export downloads.
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	// ErrNoSnapshot is returned when an export is requested before any load.
	ErrNoSnapshot = errors.New("no dashboard data loaded")
	// ErrUnknownFormat is returned for a format other than csv or xlsx.
	ErrUnknownFormat = errors.New("unknown export format")
)

// Error is an export failure. It never invalidates the loaded snapshot.
type Error struct {
	Format Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s failed: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Report is one rendered download.
type Report struct {
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
}

// ParseFormat accepts "csv" or "xlsx" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render produces the download for one format. Any failure, including a
// panic inside an encoder, comes back as *Error.
func Render(snap *datanorm.Snapshot, format Format) (report *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = &Error{Format: format, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if snap == nil {
		return nil, &Error{Format: format, Err: ErrNoSnapshot}
	}

	switch format {
	case FormatCSV:
		return &Report{
			Format:      FormatCSV,
			Filename:    Filename(snap.Brand, snap.ViewLabel(), FormatCSV),
			ContentType: ContentTypeCSV,
			Data:        CSV(snap),
		}, nil
	case FormatXLSX:
		data, encErr := EncodeXLSX(Workbook(snap))
		if encErr != nil {
			return nil, &Error{Format: FormatXLSX, Err: encErr}
		}
		return &Report{
			Format:      FormatXLSX,
			Filename:    Filename(snap.Brand, snap.ViewLabel(), FormatXLSX),
			ContentType: ContentTypeXLSX,
			Data:        data,
		}, nil
	default:
		return nil, &Error{Format: format, Err: ErrUnknownFormat}
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Sanitize replaces each run of characters outside [A-Za-z0-9_-] with "_".
func Sanitize(s string) string {
	return unsafeFilenameChars.ReplaceAllString(s, "_")
}

// Filename builds "{brand}_{label}_dashboard.{ext}" with both parts sanitized.
func Filename(brand, label string, format Format) string {
	if brand == "" {
		brand = datanorm.DefaultBrand
	}
	return Sanitize(brand) + "_" + Sanitize(label) + "_dashboard." + string(format)
}
