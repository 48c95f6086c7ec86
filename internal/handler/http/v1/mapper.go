package v1

import "github.com/safarnexus/hazard_reporting_system/internal/models"

// ModelToReportResponse преобразует доменную модель в DTO ответа на загрузку
func ModelToReportResponse(model *models.Hazard) *ReportHazardResponse {
	return &ReportHazardResponse{
		HazardID:        model.HazardID,
		Status:          "success",
		BlurredImageURL: model.ImageURL,
		CreatedAt:       model.CreatedAt,
	}
}

// ModelToNearbyResponse преобразует модель с расстоянием в DTO элемента выдачи
func ModelToNearbyResponse(model *models.HazardWithDistance) *NearbyHazardResponse {
	return &NearbyHazardResponse{
		HazardID:   model.HazardID,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		Confidence: model.Confidence,
		Timestamp:  model.DetectedAt,
		DistanceKm: model.DistanceKm,
		ImageURL:   model.ImageURL,
	}
}

// ModelsToNearbyResponses преобразует слайс моделей в слайс DTO
func ModelsToNearbyResponses(models []*models.HazardWithDistance) []*NearbyHazardResponse {
	responses := make([]*NearbyHazardResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToNearbyResponse(model)
	}
	return responses
}

// ModelToDetailResponse преобразует доменную модель в DTO детального ответа
func ModelToDetailResponse(model *models.Hazard) *HazardDetailResponse {
	return &HazardDetailResponse{
		HazardID:   model.HazardID,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		Confidence: model.Confidence,
		Timestamp:  model.DetectedAt,
		ImageURL:   model.ImageURL,
		UserID:     model.UserID,
		DeviceID:   model.DeviceID,
		HazardType: model.HazardType,
	}
}
