package request

type CreateBookingRequest struct {
	CustomerName string   `json:"customer_name" validate:"required"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address" validate:"required"`
	Postcode     string   `json:"postcode" validate:"required"`
	Date         string   `json:"date" validate:"required"`       // YYYY-MM-DD
	StartTime    string   `json:"start_time" validate:"required"` // HH:MM
	ServiceIDs   []string `json:"service_ids" validate:"required,min=1"`
	Notes        string   `json:"notes"`
}
