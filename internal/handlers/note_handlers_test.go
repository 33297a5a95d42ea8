package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"medtracker/internal/models"
	"medtracker/internal/repository"
)

func TestCreateNote(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	router := newTestRouter(db, nil)

	medication := createTestMedication(t, db, 2)

	rr := doRequest(t, router, http.MethodPost, "/api/notes/", NoteRequest{
		MedicationID: medication.ID,
		Text:         "  Took with food, no nausea.  ",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var created models.Note
	decodeJSON(t, rr, &created)
	if created.ID == 0 {
		t.Error("Expected non-zero ID")
	}
	// Text is stored trimmed
	if created.Text != "Took with food, no nausea." {
		t.Errorf("Expected trimmed text, got %q", created.Text)
	}
	if created.Date.IsZero() {
		t.Error("Expected server-assigned date")
	}
	if created.MedicationName != medication.Name {
		t.Errorf("Expected medication name %q, got %q", medication.Name, created.MedicationName)
	}
}

func TestCreateNote_Validation(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	router := newTestRouter(db, nil)

	medication := createTestMedication(t, db, 2)

	tests := []struct {
		name    string
		payload NoteRequest
		wantMsg string
	}{
		{"missing medication", NoteRequest{Text: "x"}, "medication_id is required"},
		{"unknown medication", NoteRequest{MedicationID: 9999, Text: "x"}, "medication_id does not reference an existing medication"},
		{"empty text", NoteRequest{MedicationID: medication.ID, Text: ""}, "Note text cannot be empty"},
		{"whitespace text", NoteRequest{MedicationID: medication.ID, Text: "   \n\t "}, "Note text cannot be empty"},
		{"too long", NoteRequest{MedicationID: medication.ID, Text: strings.Repeat("a", 1001)}, "Note text is too long (max 1000 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodPost, "/api/notes/", tt.payload)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			var resp errorResponse
			decodeJSON(t, rr, &resp)
			if resp.Error != tt.wantMsg {
				t.Errorf("Expected %q, got %q", tt.wantMsg, resp.Error)
			}
		})
	}
}

func TestCreateNote_MaxLengthBoundary(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	router := newTestRouter(db, nil)

	medication := createTestMedication(t, db, 2)

	rr := doRequest(t, router, http.MethodPost, "/api/notes/", NoteRequest{
		MedicationID: medication.ID,
		Text:         strings.Repeat("a", 1000),
	})
	if rr.Code != http.StatusCreated {
		t.Errorf("Exactly 1000 characters should be accepted, got %d", rr.Code)
	}
}

func TestNoteUpdateNotAllowed(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	router := newTestRouter(db, nil)

	medication := createTestMedication(t, db, 2)

	rr := doRequest(t, router, http.MethodPost, "/api/notes/", NoteRequest{
		MedicationID: medication.ID,
		Text:         "Original text",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("Failed to create note: %d", rr.Code)
	}
	var created models.Note
	decodeJSON(t, rr, &created)

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			rr := doRequest(t, router, method, fmt.Sprintf("/api/notes/%d", created.ID), NoteRequest{
				MedicationID: medication.ID,
				Text:         "Changed text",
			})
			if rr.Code != http.StatusMethodNotAllowed {
				t.Fatalf("Expected 405, got %d", rr.Code)
			}

			var resp map[string]string
			decodeJSON(t, rr, &resp)
			if resp["detail"] != fmt.Sprintf("Method '%s' not allowed.", method) {
				t.Errorf("Unexpected detail %q", resp["detail"])
			}
			if resp["error"] != "Notes cannot be updated once created." {
				t.Errorf("Unexpected error %q", resp["error"])
			}
		})
	}

	// The stored note is untouched
	got, err := repository.NewNoteRepository(db).GetByID(created.ID)
	if err != nil {
		t.Fatalf("Failed to read back note: %v", err)
	}
	if got.Text != "Original text" {
		t.Errorf("Note was mutated: %q", got.Text)
	}
}

func TestGetNotes_FilterByMedication(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	router := newTestRouter(db, nil)

	first := createTestMedication(t, db, 2)
	second := createTestMedication(t, db, 1)

	for _, n := range []NoteRequest{
		{MedicationID: first.ID, Text: "First medication note"},
		{MedicationID: first.ID, Text: "Another first note"},
		{MedicationID: second.ID, Text: "Second medication note"},
	} {
		rr := doRequest(t, router, http.MethodPost, "/api/notes/", n)
		if rr.Code != http.StatusCreated {
			t.Fatalf("Failed to create note: %d", rr.Code)
		}
	}

	rr := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/notes/?medication=%d", first.ID), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	var notes []*models.Note
	decodeJSON(t, rr, &notes)
	if len(notes) != 2 {
		t.Errorf("Expected 2 notes, got %d", len(notes))
	}

	rr = doRequest(t, router, http.MethodGet, "/api/notes/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	decodeJSON(t, rr, &notes)
	if len(notes) != 3 {
		t.Errorf("Expected 3 notes total, got %d", len(notes))
	}
}

func TestGetNotes_NonIntegerFilter(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	router := newTestRouter(db, nil)

	medication := createTestMedication(t, db, 2)
	rr := doRequest(t, router, http.MethodPost, "/api/notes/", NoteRequest{
		MedicationID: medication.ID,
		Text:         "Some note",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("Failed to create note: %d", rr.Code)
	}

	// A non-integer filter is an empty result, not an error
	rr = doRequest(t, router, http.MethodGet, "/api/notes/?medication=abc", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	var notes []*models.Note
	decodeJSON(t, rr, &notes)
	if len(notes) != 0 {
		t.Errorf("Expected empty list, got %d notes", len(notes))
	}
}

func TestDeleteNote(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	router := newTestRouter(db, nil)

	medication := createTestMedication(t, db, 2)
	rr := doRequest(t, router, http.MethodPost, "/api/notes/", NoteRequest{
		MedicationID: medication.ID,
		Text:         "To be removed",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("Failed to create note: %d", rr.Code)
	}
	var created models.Note
	decodeJSON(t, rr, &created)

	rr = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/notes/%d", created.ID), nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rr.Code)
	}

	rr = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/notes/%d", created.ID), nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", rr.Code)
	}
}
