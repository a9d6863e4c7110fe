package v1

import (
	"github.com/shenikar/paper_signal_service/internal/models"
)

// DTOToSignalDraft преобразует DTO создания в черновик сигнала.
// Вызывается после валидации, поэтому координаты не nil.
func DTOToSignalDraft(dto CreateSignalRequest) models.SignalDraft {
	return models.SignalDraft{
		ToiletID:  dto.ToiletID,
		Latitude:  *dto.Lat,
		Longitude: *dto.Lng,
		Message:   dto.Message,
	}
}

// ModelToSignalResponse преобразует доменную модель в DTO для ответа
func ModelToSignalResponse(model *models.Signal) *SignalResponse {
	return &SignalResponse{
		ID:          model.ID,
		ToiletID:    model.ToiletID,
		Lat:         model.Latitude,
		Lng:         model.Longitude,
		Message:     model.Message,
		RequesterID: model.RequesterID,
		AccepterID:  model.AccepterID,
		CreatedAt:   model.CreatedAt,
		ExpiresAt:   model.ExpiresAt,
	}
}

// ModelsToSignalResponses преобразует слайс моделей в слайс DTO
func ModelsToSignalResponses(models []*models.Signal) []*SignalResponse {
	responses := make([]*SignalResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToSignalResponse(model)
	}
	return responses
}
