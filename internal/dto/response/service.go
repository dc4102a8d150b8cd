package response

import "lcm-booking/internal/data/entity"

type ServiceResponse struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	PricePence  int    `json:"price_pence"`
	DurationMin int    `json:"duration_min"`
}

func ServiceToResponse(service *entity.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          service.ID.String(),
		Category:    service.Category,
		Name:        service.Name,
		PricePence:  service.PricePence,
		DurationMin: service.DurationMin,
	}
}
