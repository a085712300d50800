package responses

type CreatedRecord struct {
	ID string `json:"id"`
}

type Home struct {
	Message string `json:"message"`
}
