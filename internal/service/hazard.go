package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/safarnexus/hazard_reporting_system/internal/models"
	"github.com/safarnexus/hazard_reporting_system/internal/storage"
	"github.com/safarnexus/hazard_reporting_system/internal/webhook"
)

const (
	// MaxImageBytes - потолок размера загружаемого изображения (5 MiB)
	MaxImageBytes = 5 * 1024 * 1024

	// MaxRadiusKm - серверный потолок радиуса поиска
	MaxRadiusKm = 50.0

	// MaxNearbyLimit - серверный потолок размера выдачи.
	// Оба потолка отклоняются ошибкой валидации, а не тихо обрезаются.
	MaxNearbyLimit = 500

	// DefaultNearbyLimit используется, если клиент не задал limit
	DefaultNearbyLimit = 100
)

// HazardRepository определяет контракт для работы с бд опасностей
type HazardRepository interface {
	Insert(ctx context.Context, hazard *models.Hazard) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hazard, error)
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]*models.HazardWithDistance, error)
	GetHazardFromCache(ctx context.Context, id uuid.UUID) (*models.Hazard, error)
	SetHazardCache(ctx context.Context, hazard *models.Hazard) error
}

// Redactor - контракт приватизации изображения: байты -> байты,
// models.ErrDecodeImage на недекодируемом входе
type Redactor interface {
	Redact(data []byte) ([]byte, error)
}

// HazardService определяет контракт бизнес-логики работы с опасностями
type HazardService interface {
	ReportHazard(ctx context.Context, input models.HazardReport) (*models.Hazard, error)
	FindNearby(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]*models.HazardWithDistance, error)
	GetHazard(ctx context.Context, id uuid.UUID) (*models.Hazard, error)
}

type hazardService struct {
	repo      HazardRepository
	redactor  Redactor
	blobs     storage.BlobStore
	publisher webhook.EventPublisher
	logger    *logrus.Logger
}

func NewHazardService(repo HazardRepository, redactor Redactor, blobs storage.BlobStore, publisher webhook.EventPublisher, logger *logrus.Logger) HazardService {
	return &hazardService{
		repo:      repo,
		redactor:  redactor,
		blobs:     blobs,
		publisher: publisher,
		logger:    logger,
	}
}

// ReportHazard прогоняет загрузку через пайплайн
// validated -> redacted -> uploaded -> committed.
// Валидация идет до любой дорогой работы, отказ на ней не имеет побочных
// эффектов. Сбой загрузки не оставляет строки в БД, так что клиент может
// безопасно повторить запрос. Единственное окно частичного сбоя - успешная
// загрузка с последующим сбоем коммита: объект-сирота в хранилище принимается
// как редкий дешевый исход, компенсирующее удаление не выполняется.
func (s *hazardService) ReportHazard(ctx context.Context, input models.HazardReport) (*models.Hazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "ReportHazard",
		"user_id": input.UserID,
	})

	if err := validateReport(input); err != nil {
		log.WithError(err).Warn("Hazard report failed validation")
		return nil, err
	}

	redacted, err := s.redactor.Redact(input.Image)
	if err != nil {
		log.WithError(err).Warn("Failed to redact hazard image")
		return nil, fmt.Errorf("service: could not redact image: %w", err)
	}

	imageURL, err := s.blobs.Put(ctx, redacted, "")
	if err != nil {
		log.WithError(err).Error("Failed to upload redacted image")
		return nil, fmt.Errorf("service: could not upload image: %w", err)
	}

	hazardType := input.HazardType
	if hazardType == "" {
		hazardType = models.DefaultHazardType
	}

	hazard := &models.Hazard{
		UserID:     input.UserID,
		DeviceID:   input.DeviceID,
		HazardType: hazardType,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		Confidence: input.Confidence,
		ImageURL:   imageURL,
		DetectedAt: input.DetectedAt,
	}
	if err := s.repo.Insert(ctx, hazard); err != nil {
		log.WithError(err).Error("Failed to commit hazard record, stored image is orphaned")
		return nil, fmt.Errorf("service: could not commit hazard: %w", err)
	}

	// Доставка события не участвует в контракте запроса: сбой только логируем
	if err := s.publisher.Publish(ctx, webhook.HazardEvent{
		HazardID:   hazard.HazardID,
		UserID:     hazard.UserID,
		HazardType: hazard.HazardType,
		Latitude:   hazard.Latitude,
		Longitude:  hazard.Longitude,
		Confidence: hazard.Confidence,
		ImageURL:   hazard.ImageURL,
		CreatedAt:  hazard.CreatedAt,
	}); err != nil {
		log.WithError(err).Error("Failed to publish hazard created event")
	}

	log.WithField("hazard_id", hazard.HazardID).Info("Hazard reported successfully")
	return hazard, nil
}

// FindNearby возвращает опасности в радиусе radiusKm от точки,
// отсортированные по возрастанию расстояния. Расстояние в ответе - километры,
// округленные до 2 знаков той же геодезической формулой, что и фильтр.
func (s *hazardService) FindNearby(ctx context.Context, lat, lon, radiusKm float64, limit int) ([]*models.HazardWithDistance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "FindNearby",
		"radius_km": radiusKm,
		"limit":     limit,
	})

	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, models.NewValidationError("radius_km", "must be positive")
	}
	if radiusKm > MaxRadiusKm {
		return nil, models.NewValidationError("radius_km", fmt.Sprintf("cannot exceed %.0f km", MaxRadiusKm))
	}
	if limit <= 0 {
		limit = DefaultNearbyLimit
	}
	if limit > MaxNearbyLimit {
		return nil, models.NewValidationError("limit", fmt.Sprintf("cannot exceed %d", MaxNearbyLimit))
	}

	hazards, err := s.repo.FindNearby(ctx, lat, lon, radiusKm*1000, limit)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby hazards in repository")
		return nil, fmt.Errorf("service: could not find nearby hazards: %w", err)
	}

	for _, h := range hazards {
		h.DistanceKm = math.Round(h.DistanceMeters/1000*100) / 100
	}

	log.WithField("count", len(hazards)).Info("Nearby hazards fetched successfully")
	return hazards, nil
}

// GetHazard получает опасность по ID, сначала из кеша, затем из БД
func (s *hazardService) GetHazard(ctx context.Context, id uuid.UUID) (*models.Hazard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "GetHazard",
		"hazard_id": id,
	})

	cached, err := s.repo.GetHazardFromCache(ctx, id)
	if err != nil {
		// Сбой кеша не фатален, идем в БД
		log.WithError(err).Warn("Failed to read hazard from cache")
	}
	if cached != nil {
		return cached, nil
	}

	hazard, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get hazard from repository")
		return nil, fmt.Errorf("service: could not get hazard: %w", err)
	}

	if err := s.repo.SetHazardCache(ctx, hazard); err != nil {
		log.WithError(err).Warn("Failed to cache hazard")
	}
	return hazard, nil
}

// validateReport проверяет инварианты входа до любой дорогой работы.
// Возвращается первый нарушенный инвариант; значения отклоняются,
// а не приводятся к границам.
func validateReport(input models.HazardReport) error {
	if input.Confidence < 0 || input.Confidence > 1 {
		return models.NewValidationError("confidence", "must be between 0 and 1")
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return err
	}
	if len(input.Image) == 0 {
		return models.NewValidationError("image", "is required")
	}
	if len(input.Image) > MaxImageBytes {
		return models.ErrImageTooLarge
	}
	return nil
}

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return models.NewValidationError("latitude", "must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return models.NewValidationError("longitude", "must be between -180 and 180")
	}
	return nil
}
