package response

import "huellitas/internal/domain/service"

type ServiceResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Duration    int      `json:"duration"`
	DurationFmt string   `json:"duration_fmt"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}

func FromService(s service.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		DurationFmt: service.FormatDuration(s.Duration),
		Icon:        s.Icon,
		Features:    s.Features,
	}
}

func FromServices(services []service.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
