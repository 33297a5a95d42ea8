package repository

import (
	"database/sql"
	"fmt"
	"time"

	"medtracker/internal/database"
	"medtracker/internal/models"
)

type DoseLogRepository struct {
	db *database.DB
}

func NewDoseLogRepository(db *database.DB) *DoseLogRepository {
	return &DoseLogRepository{db: db}
}

// Create creates a new dose log entry
func (r *DoseLogRepository) Create(log *models.DoseLog) error {
	query := `
		INSERT INTO dose_logs (medication_id, taken_at, was_taken, created_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	`
	result, err := r.db.Exec(query,
		log.MedicationID,
		log.TakenAt,
		log.WasTaken,
	)
	if err != nil {
		return fmt.Errorf("failed to create dose log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	log.ID = id
	return nil
}

// GetByID retrieves a dose log by ID
func (r *DoseLogRepository) GetByID(id int64) (*models.DoseLog, error) {
	query := `
		SELECT d.id, d.medication_id, d.taken_at, d.was_taken, d.created_at, m.name
		FROM dose_logs d
		JOIN medications m ON m.id = d.medication_id
		WHERE d.id = ?
	`
	var log models.DoseLog
	err := r.db.QueryRow(query, id).Scan(
		&log.ID,
		&log.MedicationID,
		&log.TakenAt,
		&log.WasTaken,
		&log.CreatedAt,
		&log.MedicationName,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dose log: %w", err)
	}

	return &log, nil
}

// Update updates a dose log entry
func (r *DoseLogRepository) Update(log *models.DoseLog) error {
	query := `
		UPDATE dose_logs
		SET medication_id = ?, taken_at = ?, was_taken = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query,
		log.MedicationID,
		log.TakenAt,
		log.WasTaken,
		log.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dose log: %w", err)
	}
	return nil
}

// Delete deletes a dose log
func (r *DoseLogRepository) Delete(id int64) error {
	query := `DELETE FROM dose_logs WHERE id = ?`
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete dose log: %w", err)
	}
	return nil
}

// List retrieves all dose logs, most recent first
func (r *DoseLogRepository) List() ([]*models.DoseLog, error) {
	query := `
		SELECT d.id, d.medication_id, d.taken_at, d.was_taken, d.created_at, m.name
		FROM dose_logs d
		JOIN medications m ON m.id = d.medication_id
		ORDER BY d.taken_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list dose logs: %w", err)
	}
	defer rows.Close()

	return r.scanDoseLogs(rows)
}

// ListByMedication retrieves all dose logs for a medication
func (r *DoseLogRepository) ListByMedication(medicationID int64) ([]*models.DoseLog, error) {
	query := `
		SELECT d.id, d.medication_id, d.taken_at, d.was_taken, d.created_at, m.name
		FROM dose_logs d
		JOIN medications m ON m.id = d.medication_id
		WHERE d.medication_id = ?
		ORDER BY d.taken_at DESC
	`
	rows, err := r.db.Query(query, medicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dose logs for medication: %w", err)
	}
	defer rows.Close()

	return r.scanDoseLogs(rows)
}

// ListByDateRange retrieves dose logs whose taken_at date falls within
// the inclusive [start, end] range, ordered by taken_at ascending.
func (r *DoseLogRepository) ListByDateRange(start, end time.Time) ([]*models.DoseLog, error) {
	query := `
		SELECT d.id, d.medication_id, d.taken_at, d.was_taken, d.created_at, m.name
		FROM dose_logs d
		JOIN medications m ON m.id = d.medication_id
		WHERE DATE(d.taken_at) BETWEEN DATE(?) AND DATE(?)
		ORDER BY d.taken_at ASC
	`
	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list dose logs by date range: %w", err)
	}
	defer rows.Close()

	return r.scanDoseLogs(rows)
}

// CountsByMedication returns the taken and total log counts for a
// medication, for adherence math without fetching every row.
func (r *DoseLogRepository) CountsByMedication(medicationID int64) (taken, total int, err error) {
	query := `
		SELECT COUNT(CASE WHEN was_taken = 1 THEN 1 END), COUNT(*)
		FROM dose_logs
		WHERE medication_id = ?
	`
	if err := r.db.QueryRow(query, medicationID).Scan(&taken, &total); err != nil {
		return 0, 0, fmt.Errorf("failed to count dose logs: %w", err)
	}
	return taken, total, nil
}

// scanDoseLogs is a helper to scan multiple dose log rows
func (r *DoseLogRepository) scanDoseLogs(rows *sql.Rows) ([]*models.DoseLog, error) {
	var logs []*models.DoseLog
	for rows.Next() {
		var log models.DoseLog
		err := rows.Scan(
			&log.ID,
			&log.MedicationID,
			&log.TakenAt,
			&log.WasTaken,
			&log.CreatedAt,
			&log.MedicationName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dose log: %w", err)
		}
		logs = append(logs, &log)
	}

	return logs, rows.Err()
}
