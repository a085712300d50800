package constvars

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusUnprocessableEntity = 422
	StatusInternalServerError = 500
)
