package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jung-kurt/gofpdf/v2"

	"medtracker/internal/adherence"
	"medtracker/internal/database"
	"medtracker/internal/models"
	"medtracker/internal/repository"
)

// HandleExportCSV generates a CSV export of dose logs, optionally
// limited to a single medication via ?medication=ID
//
// @Summary Export dose logs as CSV
// @Tags export
// @Produce text/csv
// @Param medication query int false "Limit to a medication ID"
// @Success 200 {string} string "CSV attachment"
// @Failure 400 {object} errorResponse
// @Router /export/csv [get]
func HandleExportCSV(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logRepo := repository.NewDoseLogRepository(db)

		var logs []*models.DoseLog
		var err error

		filename := "medtracker-dose-logs.csv"
		if medParam := r.URL.Query().Get("medication"); medParam != "" {
			medicationID, parseErr := strconv.ParseInt(medParam, 10, 64)
			if parseErr != nil {
				writeError(w, http.StatusBadRequest, "Invalid medication ID")
				return
			}
			filename = fmt.Sprintf("medtracker-dose-logs-%d.csv", medicationID)
			logs, err = logRepo.ListByMedication(medicationID)
		} else {
			logs, err = logRepo.List()
		}

		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to retrieve dose logs")
			return
		}

		var csvBuffer bytes.Buffer
		csvWriter := csv.NewWriter(&csvBuffer)

		if err := writeDoseLogsCSV(csvWriter, logs); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to generate CSV")
			return
		}

		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to flush CSV writer")
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", csvBuffer.Len()))
		w.Write(csvBuffer.Bytes())
	}
}

// HandleExportPDF generates a PDF adherence report covering every
// medication and its dose log counts
//
// @Summary Export adherence report as PDF
// @Tags export
// @Produce application/pdf
// @Success 200 {string} string "PDF attachment"
// @Router /export/pdf [get]
func HandleExportPDF(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medications, err := repository.NewMedicationRepository(db).List()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to retrieve medications")
			return
		}

		logRepo := repository.NewDoseLogRepository(db)
		rows := make([]reportRow, 0, len(medications))
		for _, medication := range medications {
			taken, total, err := logRepo.CountsByMedication(medication.ID)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to count dose logs")
				return
			}
			rows = append(rows, reportRow{
				Medication: medication,
				Taken:      taken,
				Total:      total,
				Adherence:  adherence.RateFromCounts(taken, total),
			})
		}

		pdfBytes, err := generateAdherencePDF(rows)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to generate PDF")
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="medtracker-adherence-report.pdf"`)
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
		w.Write(pdfBytes)
	}
}

type reportRow struct {
	Medication *models.Medication
	Taken      int
	Total      int
	Adherence  float64
}

// writeDoseLogsCSV writes dose log data to CSV
func writeDoseLogsCSV(writer *csv.Writer, logs []*models.DoseLog) error {
	header := []string{"ID", "Medication", "Date", "Time", "Taken"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, log := range logs {
		taken := "No"
		if log.WasTaken {
			taken = "Yes"
		}

		row := []string{
			fmt.Sprintf("%d", log.ID),
			log.MedicationName,
			log.TakenAt.Format("2006-01-02"),
			log.TakenAt.Format("15:04:05"),
			taken,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// generateAdherencePDF renders the per-medication adherence summary
func generateAdherencePDF(rows []reportRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "MedTracker - Adherence Report")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 8, "Medication", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Dosage (mg)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Per day", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Taken/Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Adherence", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(60, 8, row.Medication.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%g", row.Medication.DosageMg), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", row.Medication.PrescribedPerDay), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d/%d", row.Taken, row.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f%%", row.Adherence), "1", 1, "R", false, 0, "")
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buffer.Bytes(), nil
}
