package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse DTO для ответа аутентификации
// @Description DTO для ответа аутентификации
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Token  string    `json:"token"`
}

// ReportHazardResponse DTO для ответа на загрузку опасности
// @Description DTO для ответа на загрузку опасности
type ReportHazardResponse struct {
	HazardID        uuid.UUID `json:"hazard_id"`
	Status          string    `json:"status"`
	BlurredImageURL string    `json:"blurred_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// NearbyHazardResponse DTO для элемента выдачи поиска по радиусу
// @Description DTO для элемента выдачи поиска по радиусу
type NearbyHazardResponse struct {
	HazardID   uuid.UUID `json:"hazard_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
	DistanceKm float64   `json:"distance_km"`
	ImageURL   string    `json:"image_url"`
}

// NearbyHazardsResponse DTO для ответа поиска по радиусу
// @Description DTO для ответа поиска по радиусу
type NearbyHazardsResponse struct {
	Hazards []*NearbyHazardResponse `json:"hazards"`
}

// HazardDetailResponse DTO для детальной информации об опасности
// @Description DTO для детальной информации об опасности
type HazardDetailResponse struct {
	HazardID   uuid.UUID `json:"hazard_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
	ImageURL   string    `json:"image_url"`
	UserID     uuid.UUID `json:"user_id"`
	DeviceID   string    `json:"device_id"`
	HazardType string    `json:"hazard_type"`
}
