package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/statx/internal/metrics"
	"github.com/desertthunder/statx/internal/models"
	"github.com/desertthunder/statx/internal/shared"
)

// RecordRepository implements models.Repository[*models.PersistedRecord].
//
// Records are immutable once written; Update exists to satisfy the
// repository contract but only refreshes timestamps.
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new RecordRepository with the given database connection
func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Create inserts a new [models.PersistedRecord] with generated ID and sequence
func (r *RecordRepository) Create(record *models.PersistedRecord) error {
	sequence, err := NextSequence(r.db, "records")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	record.SetID(id)

	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	m := record.Record()

	var spotifyPopularity sql.NullInt64
	if m.Spotify.Popularity != nil {
		spotifyPopularity = sql.NullInt64{Int64: int64(*m.Spotify.Popularity), Valid: true}
	}

	var youtubeViews sql.NullInt64
	if m.YouTube.Views != nil {
		youtubeViews = sql.NullInt64{Int64: *m.YouTube.Views, Valid: true}
	}

	query := `
		INSERT INTO records (id, sequence, report_id, artist, title, spotify_popularity, spotify_url, youtube_views, youtube_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		record.ReportID(),
		m.Artist,
		m.Title,
		spotifyPopularity,
		m.Spotify.URL,
		youtubeViews,
		m.YouTube.URL,
		record.CreatedAt(),
		record.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// Get retrieves a record by ID, excluding soft-deleted records
func (r *RecordRepository) Get(id string) (*models.PersistedRecord, error) {
	query := `
		SELECT id, sequence, report_id, artist, title, spotify_popularity, spotify_url, youtube_views, youtube_url, created_at, updated_at, deleted_at
		FROM records
		WHERE id = ? AND deleted_at IS NULL
	`

	record, err := scanRecord(r.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record not found")
	}
	return record, err
}

// Update refreshes a record's updated_at timestamp
func (r *RecordRepository) Update(record *models.PersistedRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	record.SetUpdatedAt(now)

	result, err := r.db.Exec("UPDATE records SET updated_at = ? WHERE id = ? AND deleted_at IS NULL", now, record.ID())
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("record not found or already deleted: %s", record.ID())
	}

	return nil
}

// Delete soft-deletes a record by ID
func (r *RecordRepository) Delete(id string) error {
	now := time.Now()

	result, err := r.db.Exec("UPDATE records SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL", now, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("record not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves all records matching the given criteria, excluding soft-deleted records
func (r *RecordRepository) List(criteria map[string]any) ([]*models.PersistedRecord, error) {
	query := `
		SELECT id, sequence, report_id, artist, title, spotify_popularity, spotify_url, youtube_views, youtube_url, created_at, updated_at, deleted_at
		FROM records
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if reportID, ok := criteria["report_id"].(string); ok && reportID != "" {
		query += " AND report_id = ?"
		args = append(args, reportID)
	}

	if artist, ok := criteria["artist"].(string); ok && artist != "" {
		query += " AND artist = ?"
		args = append(args, artist)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*models.PersistedRecord
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// scanRecord reads one record row through the given scan function.
func scanRecord(scan func(dest ...any) error) (*models.PersistedRecord, error) {
	var (
		id                string
		sequence          int
		reportID          string
		artist            string
		title             string
		spotifyPopularity sql.NullInt64
		spotifyURL        string
		youtubeViews      sql.NullInt64
		youtubeURL        string
		createdAt         time.Time
		updatedAt         time.Time
		deletedAt         sql.NullTime
	)

	err := scan(&id, &sequence, &reportID, &artist, &title, &spotifyPopularity, &spotifyURL, &youtubeViews, &youtubeURL, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan record: %w", err)
	}

	m := metrics.Record{Artist: artist, Title: title}
	if spotifyPopularity.Valid {
		popularity := int(spotifyPopularity.Int64)
		m.Spotify = metrics.SpotifyEntry{Popularity: &popularity, URL: spotifyURL}
	}
	if youtubeURL != "" {
		m.YouTube = metrics.YouTubeEntry{URL: youtubeURL}
		if youtubeViews.Valid {
			views := youtubeViews.Int64
			m.YouTube.Views = &views
		}
	}

	record := models.NewPersistedRecord(sequence, reportID, m)
	record.SetID(id)
	record.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		record.SetDeletedAt(&deletedAt.Time)
	}

	return record, nil
}
