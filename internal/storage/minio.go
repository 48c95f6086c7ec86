package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/safarnexus/hazard_reporting_system/internal/config"
	"github.com/safarnexus/hazard_reporting_system/internal/models"
)

// Префикс ключей объектов внутри бакета
const minioKeyPrefix = "hazards/"

// MinioStore - bucket-бэкенд поверх S3-совместимого API.
// Запись в MinIO strongly consistent: объект читаем сразу после PutObject.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinioStore создает клиент и проверяет доступность бакета при старте,
// чтобы ошибки конфигурации не всплывали на первом запросе
func NewMinioStore(ctx context.Context, cfg config.MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorageConfig, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check bucket %q: %v", models.ErrStorageUnavailable, cfg.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %q does not exist", models.ErrStorageConfig, cfg.Bucket)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return &MinioStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
	}, nil
}

// Put загружает объект и возвращает его публичный URL
func (s *MinioStore) Put(ctx context.Context, data []byte, suggestedKey string) (string, error) {
	objectName := minioKeyPrefix + GenerateKey(suggestedKey)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", mapMinioError(err)
	}
	return s.objectURL(objectName), nil
}

// objectURL строит публичный URL объекта; бакет должен иметь public read policy
func (s *MinioStore) objectURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, objectName)
}

// mapMinioError транслирует ошибки S3 API в доменную таксономию.
// Ответ с S3-кодом означает, что хранилище отклонило запрос (повтор бесполезен),
// отсутствие кода - сетевой/временный сбой.
func mapMinioError(err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "" {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	switch resp.Code {
	case "SlowDown", "ServiceUnavailable", "InternalError":
		return fmt.Errorf("%w: %s", models.ErrStorageUnavailable, resp.Code)
	case "InvalidAccessKeyId", "SignatureDoesNotMatch", "AccessDenied":
		return fmt.Errorf("%w: %s", models.ErrStorageConfig, resp.Code)
	default:
		// квота, коллизия ключа при включенном object-lock и прочие отказы
		return fmt.Errorf("%w: %s", models.ErrStorageRejected, resp.Code)
	}
}
