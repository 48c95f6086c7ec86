package models

import (
	"errors"
	"fmt"
)

// Ошибки доменного уровня. Хэндлеры сопоставляют их с HTTP-статусами
// через errors.Is/As, сервисы только оборачивают через %w.
var (
	// ErrHazardNotFound - запись об опасности отсутствует
	ErrHazardNotFound = errors.New("hazard not found")

	// ErrDecodeImage - входные байты не являются декодируемым изображением
	ErrDecodeImage = errors.New("image data is not decodable")

	// ErrImageTooLarge - изображение превышает допустимый размер
	ErrImageTooLarge = errors.New("image exceeds maximum allowed size")

	// ErrStorageUnavailable - временный сбой хранилища, клиент может повторить запрос
	ErrStorageUnavailable = errors.New("blob storage temporarily unavailable")

	// ErrStorageRejected - хранилище отклонило загрузку (квота, коллизия ключа), повтор бесполезен
	ErrStorageRejected = errors.New("blob storage rejected the upload")

	// ErrStorageConfig - неверная конфигурация хранилища, выявляется при старте процесса
	ErrStorageConfig = errors.New("blob storage misconfigured")

	// ErrEmailTaken - email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials - неверная пара email/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError описывает первый нарушенный инвариант входных данных
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// NewValidationError создает ошибку валидации для поля
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
