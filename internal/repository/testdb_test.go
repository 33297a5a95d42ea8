package repository

import (
	"path/filepath"
	"testing"

	"medtracker/internal/database"
	"medtracker/internal/models"
)

func setupTestDB(t *testing.T) *database.DB {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Create schema
	schema := `
		CREATE TABLE medications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			dosage_mg REAL NOT NULL DEFAULT 0 CHECK(dosage_mg >= 0),
			prescribed_per_day INTEGER NOT NULL DEFAULT 0 CHECK(prescribed_per_day >= 0),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE dose_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			medication_id INTEGER NOT NULL REFERENCES medications(id) ON DELETE CASCADE,
			taken_at TIMESTAMP NOT NULL,
			was_taken BOOLEAN NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			medication_id INTEGER NOT NULL REFERENCES medications(id) ON DELETE CASCADE,
			text TEXT NOT NULL,
			date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX idx_dose_logs_medication ON dose_logs(medication_id);
		CREATE INDEX idx_dose_logs_taken_at ON dose_logs(taken_at);
		CREATE INDEX idx_notes_medication ON notes(medication_id);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

func createTestMedication(t *testing.T, db *database.DB) *models.Medication {
	medication := &models.Medication{
		Name:             "Aspirin",
		DosageMg:         100,
		PrescribedPerDay: 2,
	}
	if err := NewMedicationRepository(db).Create(medication); err != nil {
		t.Fatalf("Failed to create test medication: %v", err)
	}
	return medication
}
