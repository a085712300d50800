package constvars

// Client-facing messages. Kept generic so store internals never leak to
// API consumers.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please try again"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientDatabaseNotAvailable          = "Database not available"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientDoctorNotFound                = "Doctor not found"
)

// Developer messages, logged and shown outside production only.
const (
	ErrDevValidationFailed           = "Request body validation failed"
	ErrDevInvalidInput               = "Invalid input"
	ErrDevCannotParseJSON            = "Failed to parse JSON request body"
	ErrDevCannotParseQueryParam      = "Failed to parse query parameter: %s"
	ErrDevDBNotConnected             = "No database connection established"
	ErrDevDBFailedToInsertDocument   = "Failed to insert document into database"
	ErrDevDBFailedToFindDocument     = "Failed to find document in database"
	ErrDevDBFailedToIterateDocuments = "Failed to iterate documents from database"
	ErrDevDBFailedToCountDocuments   = "Failed to count documents in database"
	ErrDevPatientNotExists           = "Referenced patient does not exist"
	ErrDevDoctorNotExists            = "Referenced doctor does not exist"
)
