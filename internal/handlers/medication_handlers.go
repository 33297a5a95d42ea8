package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"medtracker/internal/adherence"
	"medtracker/internal/database"
	"medtracker/internal/druginfo"
	"medtracker/internal/repository"

	"medtracker/internal/models"
)

// MedicationRequest is the body for creating or fully updating a medication
type MedicationRequest struct {
	Name             string  `json:"name"`
	DosageMg         float64 `json:"dosage_mg"`
	PrescribedPerDay int     `json:"prescribed_per_day"`
}

// ExpectedDosesResponse is the payload for the expected-doses query
type ExpectedDosesResponse struct {
	MedicationID  int64 `json:"medication_id"`
	Days          int   `json:"days"`
	ExpectedDoses int   `json:"expected_doses"`
}

// AdherencePeriodResponse is the payload for the period adherence query
type AdherencePeriodResponse struct {
	MedicationID int64   `json:"medication_id"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	Adherence    float64 `json:"adherence"`
}

func (req *MedicationRequest) validate() string {
	if req.Name == "" {
		return "name must not be empty"
	}
	if req.DosageMg < 0 {
		return "dosage_mg must not be negative"
	}
	if req.PrescribedPerDay < 0 {
		return "prescribed_per_day must not be negative"
	}
	return ""
}

// setAdherence fills the computed adherence field from the log counts
func setAdherence(db *database.DB, medication *models.Medication) error {
	taken, total, err := repository.NewDoseLogRepository(db).CountsByMedication(medication.ID)
	if err != nil {
		return err
	}
	medication.Adherence = adherence.RateFromCounts(taken, total)
	return nil
}

// HandleGetMedications returns a list of medications
//
// @Summary List medications
// @Description Lists all medications with their computed adherence rate.
// @Tags medications
// @Produce json
// @Success 200 {array} models.Medication
// @Router /medications [get]
func HandleGetMedications(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medicationRepo := repository.NewMedicationRepository(db)
		medications, err := medicationRepo.List()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to retrieve medications")
			return
		}

		for _, medication := range medications {
			if err := setAdherence(db, medication); err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to compute adherence")
				return
			}
		}
		if medications == nil {
			medications = []*models.Medication{}
		}

		writeJSON(w, http.StatusOK, medications)
	}
}

// HandleCreateMedication creates a new medication
//
// @Summary Create medication
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body MedicationRequest true "Medication fields"
// @Success 201 {object} models.Medication
// @Failure 400 {object} errorResponse
// @Router /medications [post]
func HandleCreateMedication(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		medication := &models.Medication{
			Name:             req.Name,
			DosageMg:         req.DosageMg,
			PrescribedPerDay: req.PrescribedPerDay,
		}

		medicationRepo := repository.NewMedicationRepository(db)
		if err := medicationRepo.Create(medication); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to create medication")
			return
		}

		writeJSON(w, http.StatusCreated, medication)
	}
}

// HandleGetMedication returns a single medication by ID
//
// @Summary Get medication
// @Tags medications
// @Produce json
// @Param id path int true "Medication ID"
// @Success 200 {object} models.Medication
// @Failure 404 {object} errorResponse
// @Router /medications/{id} [get]
func HandleGetMedication(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid medication ID")
			return
		}

		medicationRepo := repository.NewMedicationRepository(db)
		medication, err := medicationRepo.GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Medication not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve medication")
			return
		}

		if err := setAdherence(db, medication); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to compute adherence")
			return
		}

		writeJSON(w, http.StatusOK, medication)
	}
}

// HandleUpdateMedication fully updates an existing medication
//
// @Summary Update medication
// @Tags medications
// @Accept json
// @Produce json
// @Param id path int true "Medication ID"
// @Param payload body MedicationRequest true "Medication fields"
// @Success 200 {object} models.Medication
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /medications/{id} [put]
func HandleUpdateMedication(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid medication ID")
			return
		}

		medicationRepo := repository.NewMedicationRepository(db)
		medication, err := medicationRepo.GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Medication not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve medication")
			return
		}

		var req MedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		medication.Name = req.Name
		medication.DosageMg = req.DosageMg
		medication.PrescribedPerDay = req.PrescribedPerDay

		if err := medicationRepo.Update(medication); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to update medication")
			return
		}

		if err := setAdherence(db, medication); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to compute adherence")
			return
		}

		writeJSON(w, http.StatusOK, medication)
	}
}

// HandleDeleteMedication deletes a medication and, via cascade, all of
// its dose logs and notes
//
// @Summary Delete medication
// @Tags medications
// @Param id path int true "Medication ID"
// @Success 204 {string} string "no content"
// @Failure 404 {object} errorResponse
// @Router /medications/{id} [delete]
func HandleDeleteMedication(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid medication ID")
			return
		}

		medicationRepo := repository.NewMedicationRepository(db)
		if _, err := medicationRepo.GetByID(id); err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Medication not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve medication")
			return
		}

		if err := medicationRepo.Delete(id); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to delete medication")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleGetMedicationInfo proxies the external drug-information lookup.
// An upstream payload carrying an "error" key is passed through with a
// 502; the lookup is never retried.
//
// @Summary External drug info
// @Tags medications
// @Produce json
// @Param id path int true "Medication ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorResponse
// @Failure 502 {object} map[string]any
// @Router /medications/{id}/info [get]
func HandleGetMedicationInfo(db *database.DB, client *druginfo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid medication ID")
			return
		}

		medicationRepo := repository.NewMedicationRepository(db)
		medication, err := medicationRepo.GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Medication not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve medication")
			return
		}

		payload, err := client.Lookup(r.Context(), medication.Name)
		if err != nil {
			writeError(w, http.StatusBadGateway, "Drug information service unavailable")
			return
		}

		if druginfo.HasError(payload) {
			writeJSON(w, http.StatusBadGateway, payload)
			return
		}

		writeJSON(w, http.StatusOK, payload)
	}
}

// HandleGetExpectedDoses returns the expected dose count over N days.
// The medication is resolved first, so an unknown ID is a 404 before any
// parameter validation runs.
//
// @Summary Expected doses
// @Description Computes days * prescribed_per_day for the medication.
// @Tags medications
// @Produce json
// @Param id path int true "Medication ID"
// @Param days query int true "Number of days, must be positive"
// @Success 200 {object} ExpectedDosesResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /medications/{id}/expected-doses [get]
func HandleGetExpectedDoses(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid medication ID")
			return
		}

		medicationRepo := repository.NewMedicationRepository(db)
		medication, err := medicationRepo.GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Medication not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve medication")
			return
		}

		daysParam := r.URL.Query().Get("days")
		if daysParam == "" {
			writeError(w, http.StatusBadRequest, "Missing required parameter: days")
			return
		}

		days, err := strconv.Atoi(daysParam)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be a valid integer")
			return
		}
		if days <= 0 {
			writeError(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}

		expected, err := adherence.ExpectedDoses(medication.PrescribedPerDay, days)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, ExpectedDosesResponse{
			MedicationID:  medication.ID,
			Days:          days,
			ExpectedDoses: expected,
		})
	}
}

// HandleGetMedicationAdherence returns the schedule-based adherence rate
// over an inclusive date range. Unlike the adherence field on the
// medication payload, the denominator here is days * prescribed_per_day,
// not the number of logs.
//
// @Summary Adherence over a period
// @Tags medications
// @Produce json
// @Param id path int true "Medication ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} AdherencePeriodResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /medications/{id}/adherence [get]
func HandleGetMedicationAdherence(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid medication ID")
			return
		}

		medicationRepo := repository.NewMedicationRepository(db)
		medication, err := medicationRepo.GetByID(id)
		if err != nil {
			if err == repository.ErrNotFound {
				writeError(w, http.StatusNotFound, "Medication not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to retrieve medication")
			return
		}

		start, end, errMsg := parseDateRange(r)
		if errMsg != "" {
			writeError(w, http.StatusBadRequest, errMsg)
			return
		}

		logs, err := repository.NewDoseLogRepository(db).ListByMedication(id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to retrieve dose logs")
			return
		}

		rate, err := adherence.RateOverPeriod(medication.PrescribedPerDay, logs, start, end)
		if err != nil {
			if errors.Is(err, adherence.ErrInvalidSchedule) || errors.Is(err, adherence.ErrInvalidRange) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "Failed to compute adherence")
			return
		}

		writeJSON(w, http.StatusOK, AdherencePeriodResponse{
			MedicationID: medication.ID,
			Start:        start.Format("2006-01-02"),
			End:          end.Format("2006-01-02"),
			Adherence:    rate,
		})
	}
}

// parseDateRange validates the start/end query parameters shared by the
// period-adherence and dose-log filter endpoints. Returns a non-empty
// message on validation failure.
func parseDateRange(r *http.Request) (start, end time.Time, errMsg string) {
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")

	if startParam == "" || endParam == "" {
		return start, end, "Both 'start' and 'end' parameters are required"
	}

	start, err1 := time.Parse("2006-01-02", startParam)
	end, err2 := time.Parse("2006-01-02", endParam)
	if err1 != nil || err2 != nil {
		return start, end, "Invalid date format. Use YYYY-MM-DD"
	}

	if start.After(end) {
		return start, end, "start must be before or equal to end"
	}

	return start, end, ""
}
