package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"medtracker/internal/database"
	"medtracker/internal/models"
	"medtracker/internal/repository"
)

const maxNoteLength = 1000

// NoteRequest is the body for creating a note
type NoteRequest struct {
	MedicationID int64  `json:"medication_id"`
	Text         string `json:"text"`
}

// HandleGetNotes returns notes, optionally filtered by medication.
// A non-integer medication parameter yields an empty list, not an error.
//
// @Summary List notes
// @Tags notes
// @Produce json
// @Param medication query int false "Filter by medication ID"
// @Success 200 {array} models.Note
// @Router /notes [get]
func HandleGetNotes(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteRepo := repository.NewNoteRepository(db)

		var notes []*models.Note
		var err error

		if medParam := r.URL.Query().Get("medication"); medParam != "" {
			medicationID, parseErr := strconv.ParseInt(medParam, 10, 64)
			if parseErr != nil {
				writeJSON(w, http.StatusOK, []*models.Note{})
				return
			}
			notes, err = noteRepo.ListByMedication(medicationID)
		} else {
			notes, err = noteRepo.List()
		}

		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to retrieve notes")
			return
		}
		if notes == nil {
			notes = []*models.Note{}
		}

		writeJSON(w, http.StatusOK, notes)
	}
}

// HandleCreateNote creates a new note. Text is stored trimmed; the note
// date is assigned by the server.
//
// @Summary Create note
// @Tags notes
// @Accept json
// @Produce json
// @Param payload body NoteRequest true "Note fields"
// @Success 201 {object} models.Note
// @Failure 400 {object} errorResponse
// @Router /notes [post]
func HandleCreateNote(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.MedicationID == 0 {
			writeError(w, http.StatusBadRequest, "medication_id is required")
			return
		}

		exists, err := repository.NewMedicationRepository(db).Exists(req.MedicationID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to verify medication")
			return
		}
		if !exists {
			writeError(w, http.StatusBadRequest, "medication_id does not reference an existing medication")
			return
		}

		text := strings.TrimSpace(req.Text)
		if text == "" {
			writeError(w, http.StatusBadRequest, "Note text cannot be empty")
			return
		}
		if utf8.RuneCountInString(text) > maxNoteLength {
			writeError(w, http.StatusBadRequest, "Note text is too long (max 1000 characters)")
			return
		}

		note := &models.Note{
			MedicationID: req.MedicationID,
			Text:         text,
		}

		if err := repository.NewNoteRepository(db).Create(note); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create note")
			return
		}

		writeJSON(w, http.StatusCreated, note)
	}
}

// HandleGetNote returns a single note by ID
//
// @Summary Get note
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} models.Note
// @Failure 404 {object} errorResponse
// @Router /notes/{id} [get]
func HandleGetNote(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid note ID")
			return
		}

		note, err := repository.NewNoteRepository(db).GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Note not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve note")
			return
		}

		writeJSON(w, http.StatusOK, note)
	}
}

// HandleDeleteNote deletes a note
//
// @Summary Delete note
// @Tags notes
// @Param id path int true "Note ID"
// @Success 204 {string} string "no content"
// @Failure 404 {object} errorResponse
// @Router /notes/{id} [delete]
func HandleDeleteNote(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid note ID")
			return
		}

		noteRepo := repository.NewNoteRepository(db)
		if _, err := noteRepo.GetByID(id); err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Note not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve note")
			return
		}

		if err := noteRepo.Delete(id); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to delete note")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleNoteUpdateNotAllowed rejects every update attempt. Notes are
// immutable once created; this is a fixed policy, not a conditional.
//
// @Summary Update note (always rejected)
// @Tags notes
// @Produce json
// @Param id path int true "Note ID"
// @Failure 405 {object} map[string]string
// @Router /notes/{id} [put]
func HandleNoteUpdateNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"detail": fmt.Sprintf("Method '%s' not allowed.", r.Method),
			"error":  "Notes cannot be updated once created.",
		})
	}
}
