package converter

import (
	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"
)

// ServicesToSummaries projects services to id and name only.
func ServicesToSummaries(services []entity.Service) []dto.ServiceSummaryResponse {
	responses := make([]dto.ServiceSummaryResponse, len(services))
	for i, service := range services {
		responses[i] = dto.ServiceSummaryResponse{ID: service.ID, Name: service.Name}
	}
	return responses
}

func ServicesToAvailable(services []entity.Service) []dto.AvailableServiceResponse {
	responses := make([]dto.AvailableServiceResponse, len(services))
	for i, service := range services {
		slots := make([]string, len(service.Slots))
		copy(slots, service.Slots)
		responses[i] = dto.AvailableServiceResponse{
			ID:    service.ID,
			Name:  service.Name,
			Slots: slots,
		}
	}
	return responses
}
