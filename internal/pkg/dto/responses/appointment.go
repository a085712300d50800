package responses

type Appointment struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	DoctorID        string `json:"doctor_id"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Reason          string `json:"reason,omitempty"`
	Status          string `json:"status"`
}
