package requests

import "time"

// DurationMinutes is a pointer so an explicit zero in the payload is
// validated rather than mistaken for an absent field.
type CreateAppointment struct {
	PatientID       string    `json:"patient_id" validate:"required"`
	DoctorID        string    `json:"doctor_id" validate:"required"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	DurationMinutes *int      `json:"duration_minutes" validate:"omitempty,min=5,max=240"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
}
