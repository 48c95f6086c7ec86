package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/safarnexus/hazard_reporting_system/internal/config"
	"github.com/safarnexus/hazard_reporting_system/internal/models"
	"github.com/safarnexus/hazard_reporting_system/internal/service/mocks"
)

// newTestAuthService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAuthService(t *testing.T) (*authService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "hazard-reporting-test",
		JWTTokenTTL: time.Hour,
	}

	service := NewAuthService(repoMock, logger, cfg)
	return service.(*authService), repoMock
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "driver@example.com", user.Email)
			assert.Equal(t, "Test Driver", user.Name)
			// Пароль хранится только в виде bcrypt-хеша
			assert.NotEqual(t, "password123", user.PasswordHash)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
			// Симулируем, что БД присвоила ID
			user.UserID = userID
			return nil
		}).Times(1)

	// Действие
	user, token, err := service.Register(ctx, "driver@example.com", "password123", "Test Driver")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, userID, user.UserID)
	assert.NotEmpty(t, token)

	// Выпущенный токен проходит Verify и несет user_id в subject
	parsedID, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestRegister_EmailTaken(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(models.ErrEmailTaken).
		Times(1)

	// Действие
	user, token, err := service.Register(ctx, "driver@example.com", "password123", "Test Driver")

	// Проверки
	require.ErrorIs(t, err, models.ErrEmailTaken)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	existingUser := &models.User{
		UserID:       userID,
		Email:        "driver@example.com",
		PasswordHash: string(hash),
		Name:         "Test Driver",
	}

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, "driver@example.com").
		Return(existingUser, nil).
		Times(1)

	// Действие
	user, token, err := service.Login(ctx, "driver@example.com", "password123")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, existingUser, user)

	parsedID, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	existingUser := &models.User{
		UserID:       uuid.New(),
		Email:        "driver@example.com",
		PasswordHash: string(hash),
	}

	// Ожидания
	repoMock.EXPECT().
		GetByEmail(ctx, "driver@example.com").
		Return(existingUser, nil).
		Times(1)

	// Действие
	user, token, err := service.Login(ctx, "driver@example.com", "wrong-password")

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания: репозиторий не различает "нет пользователя" и "неверный пароль"
	repoMock.EXPECT().
		GetByEmail(ctx, "ghost@example.com").
		Return(nil, models.ErrInvalidCredentials).
		Times(1)

	// Действие
	_, _, err := service.Login(ctx, "ghost@example.com", "password123")

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestVerify_Garbage(t *testing.T) {
	// Подготовка
	service, _ := newTestAuthService(t)

	// Действие
	userID, err := service.Verify("not-a-jwt")

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Equal(t, uuid.Nil, userID)
}

func TestVerify_WrongSecret(t *testing.T) {
	// Подготовка
	service, _ := newTestAuthService(t)

	// Токен подписан другим секретом
	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	// Действие
	userID, err := service.Verify(forged)

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Equal(t, uuid.Nil, userID)
}

func TestVerify_Expired(t *testing.T) {
	// Подготовка
	service, _ := newTestAuthService(t)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	// Действие
	userID, err := service.Verify(expired)

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Equal(t, uuid.Nil, userID)
}

func TestVerify_NonUUIDSubject(t *testing.T) {
	// Подготовка
	service, _ := newTestAuthService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	// Действие
	userID, err := service.Verify(token)

	// Проверки
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Equal(t, uuid.Nil, userID)
}

func TestIssueToken_ContainsIssuer(t *testing.T) {
	// Подготовка
	service, _ := newTestAuthService(t)
	userID := uuid.New()

	// Действие
	token, err := service.issueToken(userID)
	require.NoError(t, err)

	// Проверки
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "hazard-reporting-test", claims.Issuer)
	assert.Equal(t, userID.String(), claims.Subject)
}
