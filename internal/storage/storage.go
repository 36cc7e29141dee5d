package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ignite/campaign-dashboard/internal/config"
	"github.com/ignite/campaign-dashboard/internal/export"
)

// ErrEmptyName is returned when a report has no filename.
var ErrEmptyName = errors.New("report has no filename")

// Sink persists rendered export reports
type Sink interface {
	Save(ctx context.Context, report *export.Report) (string, error)
}

// LocalSink writes reports into a directory on disk
type LocalSink struct {
	dir string
}

// NewLocalSink creates a sink rooted at dir, creating it if needed
func NewLocalSink(dir string) (*LocalSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &LocalSink{dir: dir}, nil
}

// Save writes the report and returns the path it was written to.
func (s *LocalSink) Save(ctx context.Context, report *export.Report) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if report.Filename == "" {
		return "", ErrEmptyName
	}

	// Sanitize key for filename
	path := filepath.Join(s.dir, filepath.Base(report.Filename))

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, report.Data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return path, nil
}

// New builds the configured sinks: the local output directory always, and
// S3 when a bucket is configured.
func New(ctx context.Context, exportCfg config.ExportConfig, cfg config.StorageConfig) ([]Sink, error) {
	local, err := NewLocalSink(exportCfg.OutputDir)
	if err != nil {
		return nil, err
	}
	sinks := []Sink{local}

	if cfg.S3Enabled() {
		s3Sink, err := NewS3Sink(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("initializing S3 storage: %w", err)
		}
		sinks = append(sinks, s3Sink)
	}
	return sinks, nil
}
