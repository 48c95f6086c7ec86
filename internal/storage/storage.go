// Package storage предоставляет durable-хранилище бинарных объектов
// за единым интерфейсом с двумя бэкендами: S3-совместимый bucket (MinIO)
// и CDN-хостинг изображений (Cloudinary). Бэкенд выбирается один раз
// при сборке приложения, бизнес-логика о выборе не знает.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// BlobStore - контракт хранилища объектов.
// Put сохраняет байты под ключом и возвращает публично доступный URL;
// URL читаем сразу после успешного возврата. Ошибки:
// models.ErrStorageUnavailable (временная, повтор допустим),
// models.ErrStorageRejected (фатальная, включая коллизию ключа),
// models.ErrStorageConfig (неверная конфигурация).
type BlobStore interface {
	Put(ctx context.Context, data []byte, suggestedKey string) (string, error)
}

// GenerateKey возвращает suggestedKey как есть либо глобально уникальный
// ключ с фиксированным расширением. Ключи уникальны на каждый вызов,
// поэтому коллизий при генерации не бывает.
func GenerateKey(suggestedKey string) string {
	if suggestedKey != "" {
		return suggestedKey
	}
	return fmt.Sprintf("%s.jpg", uuid.New())
}
