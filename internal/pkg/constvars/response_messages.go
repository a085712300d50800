package constvars

const (
	HomeMessage = "Hospital Management API is running"
)

const (
	DiagnosticsBackendRunning           = "running"
	DiagnosticsStatusAvailable          = "available"
	DiagnosticsStatusNotAvailable       = "not available"
	DiagnosticsStatusConnected          = "connected"
	DiagnosticsStatusNotConnected       = "not connected"
	DiagnosticsStatusConnectedWithError = "connected but error: %s"
)
