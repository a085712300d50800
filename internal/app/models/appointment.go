package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment references its patient and doctor by hex ObjectID strings.
// The store does not enforce those references.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	PatientID       string             `bson:"patient_id"`
	DoctorID        string             `bson:"doctor_id"`
	StartTime       time.Time          `bson:"start_time"`
	DurationMinutes int                `bson:"duration_minutes"`
	Reason          string             `bson:"reason,omitempty"`
	Status          string             `bson:"status"`
}
