package models

import (
	"fmt"
	"time"

	"github.com/desertthunder/statx/internal/metrics"
)

// Report is a persisted batch fetch: a label plus aggregate hit counts.
// Individual records hang off it via PersistedRecord.ReportID.
type Report struct {
	id        string
	sequence  int
	label     string
	summary   metrics.Summary
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewReport creates a Report for a completed batch.
func NewReport(sequence int, label string, summary metrics.Summary) *Report {
	now := time.Now()
	return &Report{
		sequence:  sequence,
		label:     label,
		summary:   summary,
		createdAt: now,
		updatedAt: now,
	}
}

func (r *Report) ID() string               { return r.id }
func (r *Report) SetID(id string)          { r.id = id }
func (r *Report) Sequence() int            { return r.sequence }
func (r *Report) Label() string            { return r.label }
func (r *Report) SetLabel(label string)    { r.label = label }
func (r *Report) Summary() metrics.Summary { return r.summary }
func (r *Report) CreatedAt() time.Time     { return r.createdAt }
func (r *Report) UpdatedAt() time.Time     { return r.updatedAt }
func (r *Report) SetUpdatedAt(t time.Time) { r.updatedAt = t }
func (r *Report) DeletedAt() *time.Time    { return r.deletedAt }
func (r *Report) SetDeletedAt(t *time.Time) {
	r.deletedAt = t
}

// Validate checks report invariants before persistence.
func (r *Report) Validate() error {
	if r.id == "" {
		return fmt.Errorf("report ID is required")
	}
	if r.summary.Total < 0 {
		return fmt.Errorf("report total cannot be negative")
	}
	if r.summary.SpotifyHits > r.summary.Total || r.summary.YouTubeHits > r.summary.Total {
		return fmt.Errorf("report hit counts cannot exceed total")
	}
	return nil
}

// PersistedRecord wraps a [metrics.Record] with persistence metadata.
type PersistedRecord struct {
	id        string
	sequence  int
	reportID  string
	record    metrics.Record
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewPersistedRecord creates a PersistedRecord belonging to a report.
func NewPersistedRecord(sequence int, reportID string, record metrics.Record) *PersistedRecord {
	now := time.Now()
	return &PersistedRecord{
		sequence:  sequence,
		reportID:  reportID,
		record:    record,
		createdAt: now,
		updatedAt: now,
	}
}

func (p *PersistedRecord) ID() string              { return p.id }
func (p *PersistedRecord) SetID(id string)         { p.id = id }
func (p *PersistedRecord) Sequence() int           { return p.sequence }
func (p *PersistedRecord) ReportID() string        { return p.reportID }
func (p *PersistedRecord) Record() metrics.Record  { return p.record }
func (p *PersistedRecord) CreatedAt() time.Time    { return p.createdAt }
func (p *PersistedRecord) UpdatedAt() time.Time    { return p.updatedAt }
func (p *PersistedRecord) SetUpdatedAt(t time.Time) {
	p.updatedAt = t
}
func (p *PersistedRecord) DeletedAt() *time.Time { return p.deletedAt }
func (p *PersistedRecord) SetDeletedAt(t *time.Time) {
	p.deletedAt = t
}

// Validate checks record invariants before persistence.
func (p *PersistedRecord) Validate() error {
	if p.id == "" {
		return fmt.Errorf("record ID is required")
	}
	if p.reportID == "" {
		return fmt.Errorf("record report ID is required")
	}
	if p.record.Artist == "" || p.record.Title == "" {
		return fmt.Errorf("record artist and title are required")
	}
	return nil
}
