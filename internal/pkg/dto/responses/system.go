package responses

type Stats struct {
	Patients     int64 `json:"patients"`
	Doctors      int64 `json:"doctors"`
	Appointments int64 `json:"appointments"`
}

// Diagnostics describes store connectivity for the /test endpoint.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseNameSet  bool     `json:"database_name_set"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
