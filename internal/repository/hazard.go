package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/safarnexus/hazard_reporting_system/internal/models"
	"github.com/safarnexus/hazard_reporting_system/internal/service"
)

// hazardCacheTTL - записи неизменяемы, кеш не может устареть,
// TTL нужен только чтобы не держать холодные записи вечно
const hazardCacheTTL = 30 * time.Minute

type HazardRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewHazardRepository(db *pgxpool.Pool, redisClient *redis.Client) service.HazardRepository {
	return &HazardRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Insert создает запись об опасности одним атомарным стейтментом:
// geography-точка и денормализованные lat/lon пишутся вместе и не могут разойтись
func (r *HazardRepository) Insert(ctx context.Context, hazard *models.Hazard) error {
	query := `
		INSERT INTO hazards (user_id, device_id, hazard_type, location, latitude, longitude, confidence, image_url, detected_at)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($5, $4), 4326)::geography, $4, $5, $6, $7, $8)
		RETURNING hazard_id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		hazard.UserID,
		hazard.DeviceID,
		hazard.HazardType,
		hazard.Latitude,
		hazard.Longitude,
		hazard.Confidence,
		hazard.ImageURL,
		hazard.DetectedAt,
	).Scan(&hazard.HazardID, &hazard.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert hazard: %w", err)
	}
	return nil
}

// GetByID возвращает опасность по ее UUID
func (r *HazardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hazard, error) {
	hazard := &models.Hazard{}
	query := `
		SELECT
			hazard_id,
			user_id,
			device_id,
			hazard_type,
			latitude,
			longitude,
			confidence,
			image_url,
			COALESCE(original_image_url, ''),
			detected_at,
			created_at
		FROM hazards
		WHERE hazard_id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hazard.HazardID,
		&hazard.UserID,
		&hazard.DeviceID,
		&hazard.HazardType,
		&hazard.Latitude,
		&hazard.Longitude,
		&hazard.Confidence,
		&hazard.ImageURL,
		&hazard.OriginalImageURL,
		&hazard.DetectedAt,
		&hazard.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrHazardNotFound
		}
		return nil, fmt.Errorf("failed to get hazard by id: %w", err)
	}
	return hazard, nil
}

// FindNearby находит опасности в радиусе radiusMeters от точки.
// ST_DWithin использует GIST-индекс по location; та же геодезическая
// ST_Distance идет и в ORDER BY, и в отчетное расстояние, поэтому
// фильтр и отображаемое значение не могут разойтись на границе радиуса.
// Граница включающая (<=). При равных расстояниях порядок стабилен по hazard_id.
func (r *HazardRepository) FindNearby(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]*models.HazardWithDistance, error) {
	query := `
		SELECT
			hazard_id,
			user_id,
			device_id,
			hazard_type,
			latitude,
			longitude,
			confidence,
			image_url,
			detected_at,
			created_at,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance_meters
		FROM hazards
		WHERE ST_DWithin(
			location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY distance_meters, hazard_id
		LIMIT $4;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby hazards: %w", err)
	}
	defer rows.Close()

	hazards := make([]*models.HazardWithDistance, 0)
	for rows.Next() {
		hazard := &models.HazardWithDistance{}
		err := rows.Scan(
			&hazard.HazardID,
			&hazard.UserID,
			&hazard.DeviceID,
			&hazard.HazardType,
			&hazard.Latitude,
			&hazard.Longitude,
			&hazard.Confidence,
			&hazard.ImageURL,
			&hazard.DetectedAt,
			&hazard.CreatedAt,
			&hazard.DistanceMeters,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard row in FindNearby: %w", err)
		}
		hazards = append(hazards, hazard)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error rows iteration in FindNearby: %w", err)
	}
	return hazards, nil
}

// hazardCacheKey возвращает ключ кеша для опасности
func hazardCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("hazard:%s", id)
}

// GetHazardFromCache пытается получить опасность из кеша Redis.
// Возвращает (nil, nil) при промахе кеша.
func (r *HazardRepository) GetHazardFromCache(ctx context.Context, id uuid.UUID) (*models.Hazard, error) {
	payload, err := r.redisClient.Get(ctx, hazardCacheKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hazard from cache: %w", err)
	}

	hazard := &models.Hazard{}
	if err := json.Unmarshal([]byte(payload), hazard); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached hazard: %w", err)
	}
	return hazard, nil
}

// SetHazardCache сохраняет опасность в кеш Redis
func (r *HazardRepository) SetHazardCache(ctx context.Context, hazard *models.Hazard) error {
	payload, err := json.Marshal(hazard)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, hazardCacheKey(hazard.HazardID), payload, hazardCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hazard cache: %w", err)
	}
	return nil
}
