package repository

import (
	"testing"
	"time"

	"medtracker/internal/models"
)

func TestMedicationRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewMedicationRepository(db)

	medication := &models.Medication{
		Name:             "Ibuprofen",
		DosageMg:         200,
		PrescribedPerDay: 3,
	}

	if err := repo.Create(medication); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if medication.ID == 0 {
		t.Error("Expected non-zero ID after creation")
	}

	got, err := repo.GetByID(medication.ID)
	if err != nil {
		t.Fatalf("Failed to read back medication: %v", err)
	}
	if got.Name != "Ibuprofen" || got.DosageMg != 200 || got.PrescribedPerDay != 3 {
		t.Errorf("Read back wrong medication: %+v", got)
	}
}

func TestMedicationRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewMedicationRepository(db)

	if _, err := repo.GetByID(9999); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMedicationRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	medication := createTestMedication(t, db)
	repo := NewMedicationRepository(db)

	exists, err := repo.Exists(medication.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !exists {
		t.Error("Expected medication to exist")
	}

	exists, err = repo.Exists(9999)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if exists {
		t.Error("Expected medication to not exist")
	}
}

func TestMedicationRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	medication := createTestMedication(t, db)
	repo := NewMedicationRepository(db)

	medication.Name = "NewName"
	medication.DosageMg = 150
	medication.PrescribedPerDay = 1

	if err := repo.Update(medication); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := repo.GetByID(medication.ID)
	if err != nil {
		t.Fatalf("Failed to read back medication: %v", err)
	}
	if got.Name != "NewName" || got.DosageMg != 150 || got.PrescribedPerDay != 1 {
		t.Errorf("Update not persisted: %+v", got)
	}
}

func TestMedicationRepository_List(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewMedicationRepository(db)
	for _, name := range []string{"Zinc", "Aspirin", "Melatonin"} {
		if err := repo.Create(&models.Medication{Name: name, DosageMg: 10, PrescribedPerDay: 1}); err != nil {
			t.Fatalf("Failed to create medication: %v", err)
		}
	}

	medications, err := repo.List()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(medications) != 3 {
		t.Fatalf("Expected 3 medications, got %d", len(medications))
	}

	// Ordered by name
	if medications[0].Name != "Aspirin" || medications[2].Name != "Zinc" {
		t.Errorf("Expected name ordering, got %s..%s", medications[0].Name, medications[2].Name)
	}
}

func TestMedicationRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	medication := createTestMedication(t, db)
	logRepo := NewDoseLogRepository(db)
	noteRepo := NewNoteRepository(db)

	log := &models.DoseLog{MedicationID: medication.ID, TakenAt: time.Now(), WasTaken: true}
	if err := logRepo.Create(log); err != nil {
		t.Fatalf("Failed to create dose log: %v", err)
	}
	note := &models.Note{MedicationID: medication.ID, Text: "Responding well"}
	if err := noteRepo.Create(note); err != nil {
		t.Fatalf("Failed to create note: %v", err)
	}

	if err := NewMedicationRepository(db).Delete(medication.ID); err != nil {
		t.Fatalf("Failed to delete medication: %v", err)
	}

	if _, err := logRepo.GetByID(log.ID); err != ErrNotFound {
		t.Errorf("Expected dose log to be cascade-deleted, got %v", err)
	}
	if _, err := noteRepo.GetByID(note.ID); err != ErrNotFound {
		t.Errorf("Expected note to be cascade-deleted, got %v", err)
	}
}
