package requests

type CreateDoctor struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Department string `json:"department" validate:"required"`
	Title      string `json:"title"`
}
