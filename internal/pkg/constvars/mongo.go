package constvars

const (
	MongoCollectionPatients     = "patient"
	MongoCollectionDoctors      = "doctor"
	MongoCollectionAppointments = "appointment"
)
