package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultHazardType присваивается, если клиент не указал категорию
const DefaultHazardType = "pothole"

// Hazard представляет зафиксированную дорожную опасность.
// Запись неизменяема после создания: обновление не поддерживается.
type Hazard struct {
	HazardID         uuid.UUID `json:"hazard_id"`
	UserID           uuid.UUID `json:"user_id"`
	DeviceID         string    `json:"device_id"`
	HazardType       string    `json:"hazard_type"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	Confidence       float64   `json:"confidence"`
	ImageURL         string    `json:"image_url"`
	OriginalImageURL string    `json:"original_image_url,omitempty"` // зарезервировано, пайплайн не заполняет
	DetectedAt       time.Time `json:"detected_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// HazardReport - входные данные пайплайна приема опасности
type HazardReport struct {
	UserID     uuid.UUID
	DeviceID   string
	HazardType string
	Latitude   float64
	Longitude  float64
	Confidence float64
	DetectedAt time.Time
	Image      []byte
}

// HazardWithDistance - опасность с расстоянием до центра поиска в метрах.
// Расстояние считается той же геодезической формулой, что и фильтр по радиусу.
type HazardWithDistance struct {
	Hazard
	DistanceMeters float64 `json:"-"`
	DistanceKm     float64 `json:"distance_km"`
}
