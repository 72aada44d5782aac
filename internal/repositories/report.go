package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/statx/internal/metrics"
	"github.com/desertthunder/statx/internal/models"
	"github.com/desertthunder/statx/internal/shared"
)

// ReportRepository implements models.Repository[*models.Report].
//
// Reports are write-once from the fetch path; updates only touch the label.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new ReportRepository with the given database connection
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new [models.Report] into the database with generated ID and sequence
func (r *ReportRepository) Create(report *models.Report) error {
	sequence, err := NextSequence(r.db, "reports")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	report.SetID(id)

	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	summary := report.Summary()
	query := `
		INSERT INTO reports (id, sequence, label, total, spotify_hits, youtube_hits, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		report.Label(),
		summary.Total,
		summary.SpotifyHits,
		summary.YouTubeHits,
		report.CreatedAt(),
		report.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

// Get retrieves a report by ID, excluding soft-deleted reports
func (r *ReportRepository) Get(id string) (*models.Report, error) {
	query := `
		SELECT id, sequence, label, total, spotify_hits, youtube_hits, created_at, updated_at, deleted_at
		FROM reports
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Update modifies an existing report's label
func (r *ReportRepository) Update(report *models.Report) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	report.SetUpdatedAt(now)

	query := `
		UPDATE reports
		SET label = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, report.Label(), now, report.ID())
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrReportNotFound, report.ID())
	}

	return nil
}

// Delete soft-deletes a report by ID
func (r *ReportRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE reports
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrReportNotFound, id)
	}

	return nil
}

// List retrieves all reports matching the given criteria, excluding soft-deleted reports
func (r *ReportRepository) List(criteria map[string]any) ([]*models.Report, error) {
	query := `
		SELECT id, sequence, label, total, spotify_hits, youtube_hits, created_at, updated_at, deleted_at
		FROM reports
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if label, ok := criteria["label"].(string); ok && label != "" {
		query += " AND label = ?"
		args = append(args, label)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return reports, nil
}

func (r *ReportRepository) scanOne(row *sql.Row) (*models.Report, error) {
	report, err := scanReport(row.Scan)
	if err == sql.ErrNoRows {
		return nil, shared.ErrReportNotFound
	}
	return report, err
}

// scanReport reads one report row through the given scan function.
func scanReport(scan func(dest ...any) error) (*models.Report, error) {
	var (
		id          string
		sequence    int
		label       string
		total       int
		spotifyHits int
		youtubeHits int
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	err := scan(&id, &sequence, &label, &total, &spotifyHits, &youtubeHits, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}

	summary := metrics.Summary{Total: total, SpotifyHits: spotifyHits, YouTubeHits: youtubeHits}
	report := models.NewReport(sequence, label, summary)
	report.SetID(id)
	report.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		report.SetDeletedAt(&deletedAt.Time)
	}

	return report, nil
}
