package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/safarnexus/hazard_reporting_system/internal/config"
	"github.com/safarnexus/hazard_reporting_system/internal/models"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService - коллаборатор аутентификации: ядро никогда не видит
// сырые креденшелы, ему нужен только Verify(token) -> user_id
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Verify(token string) (uuid.UUID, error)
}

type authService struct {
	repo   UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(repo UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// Register создает учетную запись и возвращает токен доступа
func (s *authService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   email,
	})

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to create user")
		if errors.Is(err, models.ErrEmailTaken) {
			return nil, "", models.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("service: could not create user: %w", err)
	}

	token, err := s.issueToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	log.WithField("user_id", user.UserID).Info("User registered successfully")
	return user, token, nil
}

// Login проверяет креденшелы и возвращает токен доступа
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Warn("Login failed: user lookup")
		if errors.Is(err, models.ErrInvalidCredentials) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("service: could not get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login failed: password mismatch")
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	log.WithField("user_id", user.UserID).Info("User logged in successfully")
	return user, token, nil
}

// Verify проверяет bearer-токен и возвращает идентификатор пользователя
func (s *authService) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, models.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, models.ErrInvalidCredentials
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, models.ErrInvalidCredentials
	}
	return userID, nil
}

// issueToken выпускает HS256 JWT с user_id в subject
func (s *authService) issueToken(userID uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWTTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    s.cfg.JWTIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("service: could not sign token: %w", err)
	}
	return signed, nil
}
