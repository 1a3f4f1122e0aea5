package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"barberhub/internal/httperr"
	"barberhub/internal/media"
	"barberhub/internal/middleware"
	"barberhub/internal/models"
	"barberhub/internal/storage"
)

const maxImageUploadBytes = 10 << 20

type ServiceHandler struct {
	db      *gorm.DB
	storage storage.ObjectStorage
}

func NewServiceHandler(db *gorm.DB, store storage.ObjectStorage) *ServiceHandler {
	return &ServiceHandler{db: db, storage: store}
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	DurationMin int    `json:"durationMin" binding:"required,gt=0"`
	PriceCents  int64  `json:"priceCents" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DurationMin *int    `json:"durationMin"`
	PriceCents  *int64  `json:"priceCents"`
}

func (h *ServiceHandler) ownProfile(c *gin.Context) (*models.BarberProfile, bool) {
	userID := c.GetUint(middleware.ContextUserID)

	var profile models.BarberProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		httperr.Forbidden(c, "not_a_barber", "You need a barber profile to manage services.")
		return nil, false
	}
	return &profile, true
}

func (h *ServiceHandler) ownService(c *gin.Context, profile *models.BarberProfile) (*models.Service, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return nil, false
	}

	var svc models.Service
	if err := h.db.First(&svc, uint(id)).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return nil, false
	}
	if svc.BarberID != profile.ID {
		httperr.Forbidden(c, "not_your_service", "This service belongs to another barber.")
		return nil, false
	}
	return &svc, true
}

func (h *ServiceHandler) ListMine(c *gin.Context) {
	profile, ok := h.ownProfile(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.Where("barber_id = ?", profile.ID).Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	profile, ok := h.ownProfile(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	svc := models.Service{
		BarberID:    profile.ID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		PriceCents:  req.PriceCents,
	}
	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	profile, ok := h.ownProfile(c)
	if !ok {
		return
	}
	svc, ok := h.ownService(c, profile)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.PriceCents != nil {
		if *req.PriceCents <= 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be positive.")
			return
		}
		svc.PriceCents = *req.PriceCents
	}

	if err := h.db.Save(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

// UploadImage re-encodes the uploaded picture as WebP before pushing it
// to object storage, so clients always read one predictable format.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	profile, ok := h.ownProfile(c)
	if !ok {
		return
	}
	svc, ok := h.ownService(c, profile)
	if !ok {
		return
	}

	if h.storage == nil {
		httperr.Internal(c, "storage_not_configured", "Image storage is not configured.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Attach the picture under the \"image\" form field.")
		return
	}
	if fileHeader.Size > maxImageUploadBytes {
		httperr.BadRequest(c, "image_too_large", "The image must be at most 10MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the upload.")
		return
	}
	defer file.Close()

	encoded, err := media.EncodeWebP(file, media.DefaultMaxWidth)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file is not a decodable JPEG or PNG image.")
		return
	}

	key := fmt.Sprintf("services/%d/%s.webp", svc.ID, uuid.NewString())
	url, err := h.storage.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.BadGateway(c, "storage_error", "Could not store the image, try again.")
		return
	}

	svc.ImageURL = url
	if err := h.db.Model(svc).Update("image_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not save the image URL.")
		return
	}

	c.JSON(http.StatusOK, svc)
}
