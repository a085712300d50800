package responses

type Patient struct {
	ID                string `json:"id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	DateOfBirth       string `json:"date_of_birth,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Address           string `json:"address,omitempty"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	InsuranceNumber   string `json:"insurance_number,omitempty"`
	Notes             string `json:"notes,omitempty"`
}
