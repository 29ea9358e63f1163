package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/filestorages"
)

var ErrDiagnosticsReportNotFound = errors.New("diagnostics report not found")

const diagnosticsReportDir = "diagnostics-reports"

//go:generate mockgen -source=diagnostics_report_store.go -destination=./mocks/diagnostics_report_store_mock.go -package=mocks
type DiagnosticsReportStore interface {
	// Upsert writes the report for its window, replacing an earlier report of the same window.
	Upsert(ctx context.Context, report *models.DiagnosticsReport) error
	Get(ctx context.Context, windowStart time.Time, windowSize models.WindowSize) (*models.DiagnosticsReport, error)
	// Latest returns the most recently generated report across window sizes, or
	// ErrDiagnosticsReportNotFound.
	Latest(ctx context.Context) (*models.DiagnosticsReport, error)
}

type diagnosticsReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewDiagnosticsReportStore(fileStorage filestorages.FileStorage) DiagnosticsReportStore {
	return &diagnosticsReportStore{fileStorage: fileStorage, dir: diagnosticsReportDir}
}

func (s *diagnosticsReportStore) Upsert(ctx context.Context, report *models.DiagnosticsReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal diagnostics report: %w", err)
	}
	key := s.getKey(report.WindowStart, report.WindowSize)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put diagnostics report: %w", err)
	}
	return nil
}

func (s *diagnosticsReportStore) Get(ctx context.Context, windowStart time.Time, windowSize models.WindowSize) (*models.DiagnosticsReport, error) {
	return s.read(ctx, s.getKey(windowStart, windowSize))
}

func (s *diagnosticsReportStore) Latest(ctx context.Context) (*models.DiagnosticsReport, error) {
	var latest *models.DiagnosticsReport
	for _, windowSize := range []models.WindowSize{models.WindowMinute, models.WindowHour} {
		report, err := s.latestOf(ctx, windowSize)
		if errors.Is(err, ErrDiagnosticsReportNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if latest == nil || report.GeneratedAt.After(latest.GeneratedAt) {
			latest = report
		}
	}
	if latest == nil {
		return nil, ErrDiagnosticsReportNotFound
	}
	return latest, nil
}

func (s *diagnosticsReportStore) latestOf(ctx context.Context, windowSize models.WindowSize) (*models.DiagnosticsReport, error) {
	keys, err := s.fileStorage.List(ctx, path.Join(s.dir, string(windowSize)))
	if err != nil {
		return nil, fmt.Errorf("failed to list diagnostics reports: %w", err)
	}

	// window stamps of one window size sort chronologically
	for i := len(keys) - 1; i >= 0; i-- {
		if strings.HasSuffix(keys[i], ".json") {
			return s.read(ctx, keys[i])
		}
	}
	return nil, ErrDiagnosticsReportNotFound
}

func (s *diagnosticsReportStore) read(ctx context.Context, key string) (*models.DiagnosticsReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrDiagnosticsReportNotFound
		}
		return nil, fmt.Errorf("failed to get diagnostics report: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read diagnostics report: %w", err)
	}
	var report models.DiagnosticsReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal diagnostics report: %w", err)
	}
	return &report, nil
}

func (s *diagnosticsReportStore) getKey(windowStart time.Time, windowSize models.WindowSize) string {
	return path.Join(s.dir, string(windowSize), windowSize.FormatWindowStart(windowStart)+".json")
}
