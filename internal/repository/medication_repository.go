package repository

import (
	"database/sql"
	"fmt"

	"medtracker/internal/database"
	"medtracker/internal/models"
)

type MedicationRepository struct {
	db *database.DB
}

func NewMedicationRepository(db *database.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

// Create creates a new medication
func (r *MedicationRepository) Create(medication *models.Medication) error {
	query := `
		INSERT INTO medications (name, dosage_mg, prescribed_per_day, created_at, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	result, err := r.db.Exec(query,
		medication.Name,
		medication.DosageMg,
		medication.PrescribedPerDay,
	)
	if err != nil {
		return fmt.Errorf("failed to create medication: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	medication.ID = id
	return nil
}

// GetByID retrieves a medication by ID
func (r *MedicationRepository) GetByID(id int64) (*models.Medication, error) {
	query := `
		SELECT id, name, dosage_mg, prescribed_per_day, created_at, updated_at
		FROM medications
		WHERE id = ?
	`
	var medication models.Medication
	err := r.db.QueryRow(query, id).Scan(
		&medication.ID,
		&medication.Name,
		&medication.DosageMg,
		&medication.PrescribedPerDay,
		&medication.CreatedAt,
		&medication.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}

	return &medication, nil
}

// Exists reports whether a medication with the given ID exists.
// Used for write-time referential checks before inserting dose logs
// and notes, ahead of the foreign key constraint.
func (r *MedicationRepository) Exists(id int64) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM medications WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check medication existence: %w", err)
	}
	return count > 0, nil
}

// Update updates a medication
func (r *MedicationRepository) Update(medication *models.Medication) error {
	query := `
		UPDATE medications
		SET name = ?, dosage_mg = ?, prescribed_per_day = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(query,
		medication.Name,
		medication.DosageMg,
		medication.PrescribedPerDay,
		medication.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}
	return nil
}

// Delete permanently deletes a medication. Its dose logs and notes go
// with it via ON DELETE CASCADE.
func (r *MedicationRepository) Delete(id int64) error {
	query := `DELETE FROM medications WHERE id = ?`
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}
	return nil
}

// List retrieves all medications
func (r *MedicationRepository) List() ([]*models.Medication, error) {
	query := `
		SELECT id, name, dosage_mg, prescribed_per_day, created_at, updated_at
		FROM medications
		ORDER BY name
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	defer rows.Close()

	return r.scanMedications(rows)
}

// scanMedications is a helper to scan multiple medication rows
func (r *MedicationRepository) scanMedications(rows *sql.Rows) ([]*models.Medication, error) {
	var medications []*models.Medication
	for rows.Next() {
		var medication models.Medication
		err := rows.Scan(
			&medication.ID,
			&medication.Name,
			&medication.DosageMg,
			&medication.PrescribedPerDay,
			&medication.CreatedAt,
			&medication.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medication: %w", err)
		}
		medications = append(medications, &medication)
	}

	return medications, rows.Err()
}
