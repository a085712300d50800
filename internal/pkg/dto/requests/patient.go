package requests

type CreatePatient struct {
	FirstName         string `json:"first_name" validate:"required"`
	LastName          string `json:"last_name" validate:"required"`
	Email             string `json:"email" validate:"omitempty,email"`
	Phone             string `json:"phone"`
	DateOfBirth       string `json:"date_of_birth" validate:"omitempty,date_string"`
	Gender            string `json:"gender"`
	Address           string `json:"address"`
	InsuranceProvider string `json:"insurance_provider"`
	InsuranceNumber   string `json:"insurance_number"`
	Notes             string `json:"notes"`
}
