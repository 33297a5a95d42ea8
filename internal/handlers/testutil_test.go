package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"medtracker/internal/database"
	"medtracker/internal/druginfo"
	"medtracker/internal/models"
	"medtracker/internal/repository"

	"github.com/go-chi/chi/v5"
)

func setupTestDB(t *testing.T) *database.DB {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

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
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// newTestRouter mirrors the /api routing from cmd/server
func newTestRouter(db *database.DB, drugInfoClient *druginfo.Client) http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/medications", func(r chi.Router) {
			r.Get("/", HandleGetMedications(db))
			r.Post("/", HandleCreateMedication(db))
			r.Get("/{id}", HandleGetMedication(db))
			r.Put("/{id}", HandleUpdateMedication(db))
			r.Delete("/{id}", HandleDeleteMedication(db))
			r.Get("/{id}/info", HandleGetMedicationInfo(db, drugInfoClient))
			r.Get("/{id}/expected-doses", HandleGetExpectedDoses(db))
			r.Get("/{id}/adherence", HandleGetMedicationAdherence(db))
		})

		r.Route("/dose-logs", func(r chi.Router) {
			r.Get("/", HandleGetDoseLogs(db))
			r.Post("/", HandleCreateDoseLog(db))
			r.Get("/filter", HandleFilterDoseLogs(db))
			r.Get("/{id}", HandleGetDoseLog(db))
			r.Put("/{id}", HandleUpdateDoseLog(db))
			r.Delete("/{id}", HandleDeleteDoseLog(db))
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", HandleGetNotes(db))
			r.Post("/", HandleCreateNote(db))
			r.Get("/{id}", HandleGetNote(db))
			r.Delete("/{id}", HandleDeleteNote(db))
			r.Put("/{id}", HandleNoteUpdateNotAllowed())
			r.Patch("/{id}", HandleNoteUpdateNotAllowed())
		})

		r.Get("/export/csv", HandleExportCSV(db))
		r.Get("/export/pdf", HandleExportPDF(db))
	})

	return r
}

func createTestMedication(t *testing.T, db *database.DB, prescribedPerDay int) *models.Medication {
	medication := &models.Medication{
		Name:             "Aspirin",
		DosageMg:         100,
		PrescribedPerDay: prescribedPerDay,
	}
	if err := repository.NewMedicationRepository(db).Create(medication); err != nil {
		t.Fatalf("Failed to create test medication: %v", err)
	}
	return medication
}

func doRequest(t *testing.T, handler http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rr.Body.String(), err)
	}
}
