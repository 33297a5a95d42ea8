package repository

import (
	"database/sql"
	"fmt"

	"medtracker/internal/database"
	"medtracker/internal/models"
)

type NoteRepository struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create creates a new note. The date is assigned by the database and
// never updated afterwards.
func (r *NoteRepository) Create(note *models.Note) error {
	query := `
		INSERT INTO notes (medication_id, text, date)
		VALUES (?, ?, CURRENT_TIMESTAMP)
	`
	result, err := r.db.Exec(query,
		note.MedicationID,
		note.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	note.ID = id

	created, err := r.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to read back created note: %w", err)
	}
	note.Date = created.Date
	note.MedicationName = created.MedicationName
	return nil
}

// GetByID retrieves a note by ID
func (r *NoteRepository) GetByID(id int64) (*models.Note, error) {
	query := `
		SELECT n.id, n.medication_id, n.text, n.date, m.name
		FROM notes n
		JOIN medications m ON m.id = n.medication_id
		WHERE n.id = ?
	`
	var note models.Note
	err := r.db.QueryRow(query, id).Scan(
		&note.ID,
		&note.MedicationID,
		&note.Text,
		&note.Date,
		&note.MedicationName,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// Delete deletes a note
func (r *NoteRepository) Delete(id int64) error {
	query := `DELETE FROM notes WHERE id = ?`
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// List retrieves all notes, most recent first
func (r *NoteRepository) List() ([]*models.Note, error) {
	query := `
		SELECT n.id, n.medication_id, n.text, n.date, m.name
		FROM notes n
		JOIN medications m ON m.id = n.medication_id
		ORDER BY n.date DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	return r.scanNotes(rows)
}

// ListByMedication retrieves all notes for a medication
func (r *NoteRepository) ListByMedication(medicationID int64) ([]*models.Note, error) {
	query := `
		SELECT n.id, n.medication_id, n.text, n.date, m.name
		FROM notes n
		JOIN medications m ON m.id = n.medication_id
		WHERE n.medication_id = ?
		ORDER BY n.date DESC
	`
	rows, err := r.db.Query(query, medicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes for medication: %w", err)
	}
	defer rows.Close()

	return r.scanNotes(rows)
}

// scanNotes is a helper to scan multiple note rows
func (r *NoteRepository) scanNotes(rows *sql.Rows) ([]*models.Note, error) {
	var notes []*models.Note
	for rows.Next() {
		var note models.Note
		err := rows.Scan(
			&note.ID,
			&note.MedicationID,
			&note.Text,
			&note.Date,
			&note.MedicationName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	return notes, rows.Err()
}
