package response

import (
	"time"

	"lcm-booking/internal/data/entity"
	"lcm-booking/pkg/utils"
)

type BookingCreatedResponse struct {
	ID               string `json:"id"`
	EndTime          string `json:"end_time"`
	TotalDurationMin int    `json:"total_duration_min"`
	TotalPricePence  int    `json:"total_price_pence"`
}

type BookingResponse struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	Email            *string   `json:"email,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	Address          string    `json:"address"`
	Postcode         string    `json:"postcode"`
	Date             string    `json:"date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Notes            *string   `json:"notes,omitempty"`
	TotalPricePence  int       `json:"total_price_pence"`
	TotalDurationMin int       `json:"total_duration_min"`
	CreatedAt        time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               booking.ID.String(),
		CustomerName:     booking.CustomerName,
		Email:            booking.Email,
		Phone:            booking.Phone,
		Address:          booking.Address,
		Postcode:         booking.Postcode,
		Date:             booking.Date.Format("2006-01-02"),
		StartTime:        utils.FormatClock(booking.StartMin),
		EndTime:          utils.FormatClock(booking.EndMin),
		Notes:            booking.Notes,
		TotalPricePence:  booking.TotalPricePence,
		TotalDurationMin: booking.TotalDurationMin,
		CreatedAt:        booking.CreatedAt,
	}
}
