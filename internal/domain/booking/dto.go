package booking

type CreateBookingRequest struct {
	UserID  string `json:"userId"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Service string `json:"service" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type EditBookingRequest struct {
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Service string `json:"service" validate:"required"`
}

type UpdateNoteRequest struct {
	Note string `json:"note"`
}
