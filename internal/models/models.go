package models

import (
	"fmt"
	"time"
)

// Medication represents a tracked drug with its dosing schedule
type Medication struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	DosageMg         float64   `json:"dosage_mg"`
	PrescribedPerDay int       `json:"prescribed_per_day"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Computed fields (set by repository)
	Adherence float64 `json:"adherence"`
}

// String returns a short label like "Aspirin (100mg)"
func (m *Medication) String() string {
	return fmt.Sprintf("%s (%gmg)", m.Name, m.DosageMg)
}

// HasValidSchedule reports whether the medication has a usable
// dosing schedule. A prescribed_per_day of 0 is stored but never
// valid input for dose-expectation math.
func (m *Medication) HasValidSchedule() bool {
	return m.PrescribedPerDay > 0
}

// DoseLog represents a single taken/missed dose record
type DoseLog struct {
	ID           int64     `json:"id"`
	MedicationID int64     `json:"medication_id"`
	TakenAt      time.Time `json:"taken_at"`
	WasTaken     bool      `json:"was_taken"`
	CreatedAt    time.Time `json:"created_at"`

	// Computed fields (set by repository)
	MedicationName string `json:"medication_name"`
}

// DateStr returns the date part of the timestamp
func (d *DoseLog) DateStr() string {
	return d.TakenAt.Format("2006-01-02")
}

// Status returns a human-readable taken/missed label
func (d *DoseLog) Status() string {
	if d.WasTaken {
		return "Taken"
	}
	return "Missed"
}

// Note represents a free-text annotation tied to a medication.
// Notes are immutable once created; only the closed set
// create/read/list/delete is supported.
type Note struct {
	ID           int64     `json:"id"`
	MedicationID int64     `json:"medication_id"`
	Text         string    `json:"text"`
	Date         time.Time `json:"date"`

	// Computed fields (set by repository)
	MedicationName string `json:"medication_name"`
}
