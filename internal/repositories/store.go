package repositories

import (
	"fmt"

	"github.com/desertthunder/statx/internal/metrics"
	"github.com/desertthunder/statx/internal/models"
)

// ReportStore persists a completed batch (report header plus its records)
// behind one call.
//
// Write-only from the fetch path: nothing here is consulted during
// resolution, so stored reports never influence lookup results.
type ReportStore struct {
	reports *ReportRepository
	records *RecordRepository
}

// NewReportStore creates a ReportStore over both repositories
func NewReportStore(reports *ReportRepository, records *RecordRepository) *ReportStore {
	return &ReportStore{reports: reports, records: records}
}

// SaveBatch stores a report labelled label containing the given records.
// Returns the created report with its generated ID.
func (s *ReportStore) SaveBatch(label string, records []metrics.Record) (*models.Report, error) {
	report := models.NewReport(0, label, metrics.Summarize(records))

	if err := s.reports.Create(report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	for _, record := range records {
		persisted := models.NewPersistedRecord(0, report.ID(), record)
		if err := s.records.Create(persisted); err != nil {
			return nil, fmt.Errorf("failed to save record for %s - %s: %w", record.Artist, record.Title, err)
		}
	}

	return report, nil
}

// Records loads the stored records of a report in insertion order.
func (s *ReportStore) Records(reportID string) ([]metrics.Record, error) {
	persisted, err := s.records.List(map[string]any{"report_id": reportID})
	if err != nil {
		return nil, err
	}

	records := make([]metrics.Record, len(persisted))
	for i, p := range persisted {
		records[i] = p.Record()
	}

	return records, nil
}
