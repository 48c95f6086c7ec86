package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/safarnexus/hazard_reporting_system/internal/models"
	"github.com/safarnexus/hazard_reporting_system/internal/service/mocks"
	storage_mocks "github.com/safarnexus/hazard_reporting_system/internal/storage/mocks"
	"github.com/safarnexus/hazard_reporting_system/internal/webhook"
	webhook_mocks "github.com/safarnexus/hazard_reporting_system/internal/webhook/mocks"
)

// newTestHazardService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestHazardService(t *testing.T) (*hazardService, *mocks.MockHazardRepository, *mocks.MockRedactor, *storage_mocks.MockBlobStore, *webhook_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockHazardRepository(ctrl)
	redactorMock := mocks.NewMockRedactor(ctrl)
	blobsMock := storage_mocks.NewMockBlobStore(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewHazardService(repoMock, redactorMock, blobsMock, publisherMock, logger)
	return service.(*hazardService), repoMock, redactorMock, blobsMock, publisherMock
}

// validReport возвращает корректный входной отчет для тестов пайплайна
func validReport() models.HazardReport {
	return models.HazardReport{
		UserID:     uuid.New(),
		DeviceID:   "device-42",
		Latitude:   55.75,
		Longitude:  37.61,
		Confidence: 0.9,
		DetectedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Image:      []byte("original-image"),
	}
}

func TestReportHazard_Success(t *testing.T) {
	// Подготовка
	service, repoMock, redactorMock, blobsMock, publisherMock := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()
	hazardID := uuid.New()
	redacted := []byte("redacted-image")
	imageURL := "https://cdn.example.com/hazards/abc.jpg"

	// Ожидания
	// 1. Приватизация изображения
	redactorMock.EXPECT().
		Redact(input.Image).
		Return(redacted, nil).
		Times(1)

	// 2. Загрузка уже размытых байтов, не исходных
	blobsMock.EXPECT().
		Put(ctx, redacted, "").
		Return(imageURL, nil).
		Times(1)

	// 3. Коммит записи в БД
	repoMock.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, hazard *models.Hazard) error {
			assert.Equal(t, input.UserID, hazard.UserID)
			assert.Equal(t, imageURL, hazard.ImageURL)
			// Тип не задан - подставляется тип по умолчанию
			assert.Equal(t, models.DefaultHazardType, hazard.HazardType)
			// Симулируем, что БД присвоила ID и время создания
			hazard.HazardID = hazardID
			hazard.CreatedAt = time.Now()
			return nil
		}).Times(1)

	// 4. Публикация события
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.HazardEvent) {
			assert.Equal(t, hazardID, event.HazardID)
			assert.Equal(t, imageURL, event.ImageURL)
		}).Return(nil).Times(1)

	// Действие
	hazard, err := service.ReportHazard(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, hazardID, hazard.HazardID)
	assert.Equal(t, imageURL, hazard.ImageURL)
	assert.Equal(t, models.DefaultHazardType, hazard.HazardType)
}

func TestReportHazard_KeepsExplicitHazardType(t *testing.T) {
	// Подготовка
	service, repoMock, redactorMock, blobsMock, publisherMock := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()
	input.HazardType = "open_manhole"

	// Ожидания
	redactorMock.EXPECT().Redact(input.Image).Return([]byte("redacted"), nil).Times(1)
	blobsMock.EXPECT().Put(ctx, gomock.Any(), "").Return("url", nil).Times(1)
	repoMock.EXPECT().
		Insert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, hazard *models.Hazard) error {
			assert.Equal(t, "open_manhole", hazard.HazardType)
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	_, err := service.ReportHazard(ctx, input)

	// Проверки
	require.NoError(t, err)
}

func TestReportHazard_InvalidConfidence(t *testing.T) {
	// Подготовка
	service, _, redactorMock, blobsMock, _ := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()
	input.Confidence = 1.5

	// Ожидания: отказ валидации не имеет побочных эффектов
	redactorMock.EXPECT().Redact(gomock.Any()).Times(0)
	blobsMock.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	hazard, err := service.ReportHazard(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, hazard)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "confidence", validationErr.Field)
}

func TestReportHazard_InvalidLatitude(t *testing.T) {
	// Подготовка
	service, _, redactorMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()
	input.Latitude = 91.0

	// Ожидания
	redactorMock.EXPECT().Redact(gomock.Any()).Times(0)

	// Действие
	_, err := service.ReportHazard(ctx, input)

	// Проверки
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "latitude", validationErr.Field)
}

func TestReportHazard_InvalidLongitude(t *testing.T) {
	// Подготовка
	service, _, redactorMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()
	input.Longitude = -180.5

	// Ожидания
	redactorMock.EXPECT().Redact(gomock.Any()).Times(0)

	// Действие
	_, err := service.ReportHazard(ctx, input)

	// Проверки
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "longitude", validationErr.Field)
}

func TestReportHazard_EmptyImage(t *testing.T) {
	// Подготовка
	service, _, redactorMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()
	input.Image = nil

	// Ожидания
	redactorMock.EXPECT().Redact(gomock.Any()).Times(0)

	// Действие
	_, err := service.ReportHazard(ctx, input)

	// Проверки
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "image", validationErr.Field)
}

func TestReportHazard_ImageTooLarge(t *testing.T) {
	// Подготовка
	service, _, redactorMock, _, _ := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()
	input.Image = bytes.Repeat([]byte{0x01}, MaxImageBytes+1)

	// Ожидания
	redactorMock.EXPECT().Redact(gomock.Any()).Times(0)

	// Действие
	_, err := service.ReportHazard(ctx, input)

	// Проверки
	require.ErrorIs(t, err, models.ErrImageTooLarge)
}

func TestReportHazard_UndecodableImage(t *testing.T) {
	// Подготовка
	service, repoMock, redactorMock, blobsMock, _ := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()

	// Ожидания: после сбоя декодирования ни загрузки, ни коммита
	redactorMock.EXPECT().
		Redact(input.Image).
		Return(nil, fmt.Errorf("%w: unknown format", models.ErrDecodeImage)).
		Times(1)
	blobsMock.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	hazard, err := service.ReportHazard(ctx, input)

	// Проверки
	require.ErrorIs(t, err, models.ErrDecodeImage)
	assert.Nil(t, hazard)
}

func TestReportHazard_UploadFails(t *testing.T) {
	// Подготовка
	service, repoMock, redactorMock, blobsMock, _ := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()

	// Ожидания: сбой загрузки не оставляет строки в БД
	redactorMock.EXPECT().Redact(input.Image).Return([]byte("redacted"), nil).Times(1)
	blobsMock.EXPECT().
		Put(ctx, gomock.Any(), "").
		Return("", models.ErrStorageUnavailable).
		Times(1)
	repoMock.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	hazard, err := service.ReportHazard(ctx, input)

	// Проверки
	require.ErrorIs(t, err, models.ErrStorageUnavailable)
	assert.Nil(t, hazard)
}

func TestReportHazard_CommitFails(t *testing.T) {
	// Подготовка
	service, repoMock, redactorMock, blobsMock, publisherMock := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()
	dbError := fmt.Errorf("соединение разорвано")

	// Ожидания: событие после сбоя коммита не публикуется
	redactorMock.EXPECT().Redact(input.Image).Return([]byte("redacted"), nil).Times(1)
	blobsMock.EXPECT().Put(ctx, gomock.Any(), "").Return("url", nil).Times(1)
	repoMock.EXPECT().Insert(ctx, gomock.Any()).Return(dbError).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	hazard, err := service.ReportHazard(ctx, input)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, hazard)
	assert.ErrorContains(t, err, "could not commit hazard")
}

func TestReportHazard_PublishFailureIsNotFatal(t *testing.T) {
	// Подготовка
	service, repoMock, redactorMock, blobsMock, publisherMock := newTestHazardService(t)
	ctx := context.Background()
	input := validReport()

	// Ожидания: сбой публикации события только логируется
	redactorMock.EXPECT().Redact(input.Image).Return([]byte("redacted"), nil).Times(1)
	blobsMock.EXPECT().Put(ctx, gomock.Any(), "").Return("url", nil).Times(1)
	repoMock.EXPECT().Insert(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis недоступен")).
		Times(1)

	// Действие
	hazard, err := service.ReportHazard(ctx, input)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, hazard)
}

func TestFindNearby_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()
	lat, lon := 55.75, 37.61
	found := []*models.HazardWithDistance{
		{Hazard: models.Hazard{HazardID: uuid.New()}, DistanceMeters: 123.4},
		{Hazard: models.Hazard{HazardID: uuid.New()}, DistanceMeters: 1434.9},
	}

	// Ожидания: радиус передается в репозиторий в метрах
	repoMock.EXPECT().
		FindNearby(ctx, lat, lon, 2000.0, 10).
		Return(found, nil).
		Times(1)

	// Действие
	hazards, err := service.FindNearby(ctx, lat, lon, 2.0, 10)

	// Проверки
	require.NoError(t, err)
	require.Len(t, hazards, 2)
	// Километры округлены до 2 знаков
	assert.Equal(t, 0.12, hazards[0].DistanceKm)
	assert.Equal(t, 1.43, hazards[1].DistanceKm)
}

func TestFindNearby_DefaultLimit(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания: нулевой limit заменяется значением по умолчанию
	repoMock.EXPECT().
		FindNearby(ctx, 55.75, 37.61, 5000.0, DefaultNearbyLimit).
		Return([]*models.HazardWithDistance{}, nil).
		Times(1)

	// Действие
	hazards, err := service.FindNearby(ctx, 55.75, 37.61, 5.0, 0)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, hazards)
}

func TestFindNearby_RadiusAtCap(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания: ровно 50 км еще допустимо
	repoMock.EXPECT().
		FindNearby(ctx, 55.75, 37.61, 50000.0, DefaultNearbyLimit).
		Return([]*models.HazardWithDistance{}, nil).
		Times(1)

	// Действие
	_, err := service.FindNearby(ctx, 55.75, 37.61, MaxRadiusKm, 0)

	// Проверки
	require.NoError(t, err)
}

func TestFindNearby_RadiusTooLarge(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания: запрос отклоняется, а не обрезается до потолка
	repoMock.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	hazards, err := service.FindNearby(ctx, 55.75, 37.61, MaxRadiusKm+0.1, 10)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, hazards)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "radius_km", validationErr.Field)
}

func TestFindNearby_RadiusNotPositive(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.FindNearby(ctx, 55.75, 37.61, 0, 10)

	// Проверки
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "radius_km", validationErr.Field)
}

func TestFindNearby_LimitTooLarge(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания: запрос отклоняется, а не обрезается до потолка
	repoMock.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.FindNearby(ctx, 55.75, 37.61, 5.0, MaxNearbyLimit+1)

	// Проверки
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "limit", validationErr.Field)
}

func TestFindNearby_InvalidCoordinates(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.FindNearby(ctx, -95.0, 37.61, 5.0, 10)

	// Проверки
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "latitude", validationErr.Field)
}

func TestFindNearby_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("соединение разорвано")

	// Ожидания
	repoMock.EXPECT().
		FindNearby(ctx, 55.75, 37.61, 5000.0, 10).
		Return(nil, dbError).
		Times(1)

	// Действие
	hazards, err := service.FindNearby(ctx, 55.75, 37.61, 5.0, 10)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, hazards)
	assert.ErrorContains(t, err, "could not find nearby hazards")
}

func TestGetHazard_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()
	hazardID := uuid.New()
	expectedHazard := &models.Hazard{
		HazardID:   hazardID,
		HazardType: "pothole",
	}

	// Ожидания
	repoMock.EXPECT().
		GetHazardFromCache(ctx, hazardID).
		Return(expectedHazard, nil).
		Times(1)

	// Действие
	hazard, err := service.GetHazard(ctx, hazardID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedHazard, hazard)
}

func TestGetHazard_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()
	hazardID := uuid.New()
	expectedHazard := &models.Hazard{
		HazardID:   hazardID,
		HazardType: "pothole",
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetHazardFromCache(ctx, hazardID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, hazardID).
		Return(expectedHazard, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetHazardCache(ctx, expectedHazard).
		Return(nil).
		Times(1)

	// Действие
	hazard, err := service.GetHazard(ctx, hazardID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedHazard, hazard)
}

func TestGetHazard_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()
	hazardID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetHazardFromCache(ctx, hazardID).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().
		GetByID(ctx, hazardID).
		Return(nil, models.ErrHazardNotFound).
		Times(1)

	// Действие
	hazard, err := service.GetHazard(ctx, hazardID)

	// Проверки
	require.ErrorIs(t, err, models.ErrHazardNotFound)
	assert.Nil(t, hazard)
}

func TestGetHazard_CacheFailureIsNotFatal(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _ := newTestHazardService(t)
	ctx := context.Background()
	hazardID := uuid.New()
	expectedHazard := &models.Hazard{HazardID: hazardID}

	// Ожидания: сбой кеша не мешает чтению из БД
	repoMock.EXPECT().
		GetHazardFromCache(ctx, hazardID).
		Return(nil, fmt.Errorf("redis недоступен")).
		Times(1)

	repoMock.EXPECT().
		GetByID(ctx, hazardID).
		Return(expectedHazard, nil).
		Times(1)

	repoMock.EXPECT().
		SetHazardCache(ctx, expectedHazard).
		Return(fmt.Errorf("redis недоступен")).
		Times(1)

	// Действие
	hazard, err := service.GetHazard(ctx, hazardID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedHazard, hazard)
}
