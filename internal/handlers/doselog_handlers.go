package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"medtracker/internal/database"
	"medtracker/internal/models"
	"medtracker/internal/repository"
)

// DoseLogRequest is the body for creating or fully updating a dose log
type DoseLogRequest struct {
	MedicationID int64   `json:"medication_id"`
	TakenAt      *string `json:"taken_at"`
	WasTaken     bool    `json:"was_taken"`
}

// resolve validates the request and returns the parsed timestamp.
// The medication reference is checked at write time, before the
// foreign key constraint would reject it.
func (req *DoseLogRequest) resolve(db *database.DB) (time.Time, string) {
	if req.MedicationID == 0 {
		return time.Time{}, "medication_id is required"
	}

	exists, err := repository.NewMedicationRepository(db).Exists(req.MedicationID)
	if err != nil {
		return time.Time{}, "Failed to verify medication"
	}
	if !exists {
		return time.Time{}, "medication_id does not reference an existing medication"
	}

	if req.TakenAt == nil || *req.TakenAt == "" {
		return time.Time{}, "taken_at is required"
	}

	takenAt, err := time.Parse(time.RFC3339, *req.TakenAt)
	if err != nil {
		return time.Time{}, "Invalid taken_at format, use RFC3339"
	}

	// Future timestamps are permitted.
	return takenAt, ""
}

// HandleGetDoseLogs returns all dose logs
//
// @Summary List dose logs
// @Tags dose-logs
// @Produce json
// @Success 200 {array} models.DoseLog
// @Router /dose-logs [get]
func HandleGetDoseLogs(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logs, err := repository.NewDoseLogRepository(db).List()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to retrieve dose logs")
			return
		}
		if logs == nil {
			logs = []*models.DoseLog{}
		}

		writeJSON(w, http.StatusOK, logs)
	}
}

// HandleCreateDoseLog creates a new dose log entry
//
// @Summary Create dose log
// @Tags dose-logs
// @Accept json
// @Produce json
// @Param payload body DoseLogRequest true "Dose log fields; taken_at in RFC3339"
// @Success 201 {object} models.DoseLog
// @Failure 400 {object} errorResponse
// @Router /dose-logs [post]
func HandleCreateDoseLog(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DoseLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		takenAt, errMsg := req.resolve(db)
		if errMsg != "" {
			writeError(w, http.StatusBadRequest, errMsg)
			return
		}

		log := &models.DoseLog{
			MedicationID: req.MedicationID,
			TakenAt:      takenAt,
			WasTaken:     req.WasTaken,
		}

		logRepo := repository.NewDoseLogRepository(db)
		if err := logRepo.Create(log); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create dose log")
			return
		}

		created, err := logRepo.GetByID(log.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to read back dose log")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// HandleGetDoseLog returns a single dose log by ID
//
// @Summary Get dose log
// @Tags dose-logs
// @Produce json
// @Param id path int true "Dose log ID"
// @Success 200 {object} models.DoseLog
// @Failure 404 {object} errorResponse
// @Router /dose-logs/{id} [get]
func HandleGetDoseLog(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid dose log ID")
			return
		}

		log, err := repository.NewDoseLogRepository(db).GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Dose log not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve dose log")
			return
		}

		writeJSON(w, http.StatusOK, log)
	}
}

// HandleUpdateDoseLog fully updates an existing dose log
//
// @Summary Update dose log
// @Tags dose-logs
// @Accept json
// @Produce json
// @Param id path int true "Dose log ID"
// @Param payload body DoseLogRequest true "Dose log fields"
// @Success 200 {object} models.DoseLog
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /dose-logs/{id} [put]
func HandleUpdateDoseLog(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid dose log ID")
			return
		}

		logRepo := repository.NewDoseLogRepository(db)
		log, err := logRepo.GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Dose log not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve dose log")
			return
		}

		var req DoseLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		takenAt, errMsg := req.resolve(db)
		if errMsg != "" {
			writeError(w, http.StatusBadRequest, errMsg)
			return
		}

		log.MedicationID = req.MedicationID
		log.TakenAt = takenAt
		log.WasTaken = req.WasTaken

		if err := logRepo.Update(log); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to update dose log")
			return
		}

		updated, err := logRepo.GetByID(id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to read back dose log")
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteDoseLog deletes a dose log
//
// @Summary Delete dose log
// @Tags dose-logs
// @Param id path int true "Dose log ID"
// @Success 204 {string} string "no content"
// @Failure 404 {object} errorResponse
// @Router /dose-logs/{id} [delete]
func HandleDeleteDoseLog(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid dose log ID")
			return
		}

		logRepo := repository.NewDoseLogRepository(db)
		if _, err := logRepo.GetByID(id); err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Dose log not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve dose log")
			return
		}

		if err := logRepo.Delete(id); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to delete dose log")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleFilterDoseLogs returns dose logs whose taken_at date falls in
// the inclusive [start, end] range, ordered by taken_at ascending
//
// @Summary Filter dose logs by date range
// @Tags dose-logs
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} models.DoseLog
// @Failure 400 {object} errorResponse
// @Router /dose-logs/filter [get]
func HandleFilterDoseLogs(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, end, errMsg := parseDateRange(r)
		if errMsg != "" {
			writeError(w, http.StatusBadRequest, errMsg)
			return
		}

		logs, err := repository.NewDoseLogRepository(db).ListByDateRange(start, end)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to retrieve dose logs")
			return
		}
		if logs == nil {
			logs = []*models.DoseLog{}
		}

		writeJSON(w, http.StatusOK, logs)
	}
}
