package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	cldconfig "github.com/cloudinary/cloudinary-go/v2/config"

	"github.com/safarnexus/hazard_reporting_system/internal/config"
	"github.com/safarnexus/hazard_reporting_system/internal/models"
)

var overwriteFalse = false

// CloudinaryStore - CDN-бэкенд хостинга изображений.
// Overwrite выключен: коллизия ключа дает отказ, а не тихую перезапись.
type CloudinaryStore struct {
	uploader *uploader.API
	folder   string
}

// NewCloudinaryStore строит клиент из параметров; ошибка здесь -
// неверная конфигурация, всплывает при старте процесса
func NewCloudinaryStore(cfg config.CloudinaryConfig) (*CloudinaryStore, error) {
	c, err := cldconfig.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageConfig, err)
	}
	up, err := uploader.NewWithConfiguration(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageConfig, err)
	}
	return &CloudinaryStore{
		uploader: up,
		folder:   cfg.Folder,
	}, nil
}

// Put загружает изображение и возвращает его secure URL.
// URL доступен сразу: Upload возвращается после завершения обработки.
func (s *CloudinaryStore) Put(ctx context.Context, data []byte, suggestedKey string) (string, error) {
	key := GenerateKey(suggestedKey)
	publicID := strings.TrimSuffix(key, ".jpg")

	result, err := s.uploader.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     publicID,
		ResourceType: "image",
		Overwrite:    &overwriteFalse,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", models.ErrStorageRejected, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: upload returned no URL", models.ErrStorageRejected)
	}
	return result.SecureURL, nil
}
