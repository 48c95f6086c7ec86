package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/safarnexus/hazard_reporting_system/internal/config"
	"github.com/safarnexus/hazard_reporting_system/internal/models"
	"github.com/safarnexus/hazard_reporting_system/internal/service"
)

type Handler struct {
	hazardService service.HazardService
	authService   service.AuthService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(hazardService service.HazardService, authService service.AuthService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		hazardService: hazardService,
		authService:   authService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Register a new user
// @Description Create a new user account and return a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or email already registered"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), input.Email, input.Password, input.Name)
	if err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		log.WithError(err).Error("Failed to register user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
		Token:  token,
	})
}

// @Summary Login an existing user
// @Description Verify credentials and return a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.WithError(err).Error("Failed to login user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
		Token:  token,
	})
}

// @Summary Report a hazard
// @Description Upload a geotagged hazard photo. Faces are blurred before the image is stored.
// @Tags Hazards
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Hazard photo (max 5 MiB)"
// @Param latitude formData number true "Latitude in degrees"
// @Param longitude formData number true "Longitude in degrees"
// @Param confidence formData number true "Detector confidence, 0..1"
// @Param timestamp formData string true "Observation time, RFC3339"
// @Param device_id formData string true "Client device identifier"
// @Success 201 {object} ReportHazardResponse
// @Failure 400 {object} map[string]string "Validation error or undecodable image"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "Image too large"
// @Failure 500 {object} map[string]string "Internal server error"
// @Failure 503 {object} map[string]string "Storage temporarily unavailable"
// @Router /hazards [post]
func (h *Handler) reportHazard(c *gin.Context) {
	log := h.logger.WithField("method", "reportHazard")
	userID := userIDFromContext(c)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	// Потолок размера проверяется до чтения файла в память
	if file.Size > service.MaxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	latitude, err := strconv.ParseFloat(c.PostForm("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	longitude, err := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}
	confidence, err := strconv.ParseFloat(c.PostForm("confidence"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid confidence"})
		return
	}
	detectedAt, err := time.Parse(time.RFC3339, c.PostForm("timestamp"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp, expected RFC3339"})
		return
	}
	deviceID := c.PostForm("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device_id is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer f.Close()
	imageBytes, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	hazard, err := h.hazardService.ReportHazard(c.Request.Context(), models.HazardReport{
		UserID:     userID,
		DeviceID:   deviceID,
		HazardType: c.PostForm("hazard_type"),
		Latitude:   latitude,
		Longitude:  longitude,
		Confidence: confidence,
		DetectedAt: detectedAt,
		Image:      imageBytes,
	})
	if err != nil {
		h.writeReportError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToReportResponse(hazard))
}

// writeReportError сопоставляет ошибки пайплайна с HTTP-статусами
func (h *Handler) writeReportError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s", validationErr.Field, validationErr.Reason)})
	case errors.Is(err, models.ErrImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
	case errors.Is(err, models.ErrDecodeImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "image data is not a decodable image"})
	case errors.Is(err, models.ErrStorageUnavailable):
		// Временный сбой: строки в БД нет, клиент может повторить запрос целиком
		log.WithError(err).Error("Storage temporarily unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage temporarily unavailable, retry later"})
	default:
		log.WithError(err).Error("Failed to report hazard in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Find hazards near a point
// @Description Return hazards within radius_km of the point, sorted by ascending distance. Radius above 50 km and limit above 500 are rejected.
// @Tags Hazards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param latitude query number true "Center latitude"
// @Param longitude query number true "Center longitude"
// @Param radius_km query number false "Search radius in km" default(5)
// @Param limit query int false "Maximum results" default(100)
// @Success 200 {object} NearbyHazardsResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/nearby [get]
func (h *Handler) nearbyHazards(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyHazards")

	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}
	radiusKm, err := strconv.ParseFloat(c.DefaultQuery("radius_km", "5"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_km"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	hazards, err := h.hazardService.FindNearby(c.Request.Context(), latitude, longitude, radiusKm, limit)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %s", validationErr.Field, validationErr.Reason)})
			return
		}
		log.WithError(err).Error("Failed to find nearby hazards in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, NearbyHazardsResponse{Hazards: ModelsToNearbyResponses(hazards)})
}

// @Summary Get hazard by ID
// @Description Get a single hazard record by its ID.
// @Tags Hazards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hazard ID"
// @Success 200 {object} HazardDetailResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id} [get]
func (h *Handler) getHazard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "getHazard").WithField("hazard_id", id)

	hazard, err := h.hazardService.GetHazard(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrHazardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hazard not found"})
			return
		}
		log.WithError(err).Error("Failed to get hazard from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDetailResponse(hazard))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
