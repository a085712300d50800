package constvars

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"

	AppointmentDefaultDurationMinutes = 30
	AppointmentMinDurationMinutes     = 5
	AppointmentMaxDurationMinutes     = 240
)
