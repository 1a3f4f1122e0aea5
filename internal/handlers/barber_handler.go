package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barberhub/internal/dto"
	"barberhub/internal/httperr"
	"barberhub/internal/middleware"
	"barberhub/internal/models"
	ucreview "barberhub/internal/usecase/review"
)

const (
	nearbyDefaultLimit  = 20
	nearbyFilteredLimit = 50
	profileReviewsLimit = 20
)

type BarberHandler struct {
	db      *gorm.DB
	reviews ucreview.Repository
}

func NewBarberHandler(db *gorm.DB, reviews ucreview.Repository) *BarberHandler {
	return &BarberHandler{db: db, reviews: reviews}
}

type UpsertBarberProfileRequest struct {
	ShopName     string   `json:"shopName" binding:"required"`
	Description  string   `json:"description"`
	Phone        string   `json:"phone"`
	AddressLine1 string   `json:"addressLine1" binding:"required"`
	AddressLine2 string   `json:"addressLine2"`
	City         string   `json:"city" binding:"required"`
	Province     string   `json:"province" binding:"required"`
	PostalCode   string   `json:"postalCode" binding:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type BarberListItem struct {
	models.BarberProfile
	Owner         dto.ClientSummary `json:"user"`
	Services      []models.Service  `json:"services"`
	RatingAverage *float64          `json:"ratingAverage"`
	RatingCount   int               `json:"ratingCount"`
}

type BarberDetail struct {
	BarberListItem
	Reviews []dto.ReviewView `json:"reviews"`
}

// UpsertProfile creates or updates the profile for the authenticated
// user and promotes the account to the BARBER role on first creation.
func (h *BarberHandler) UpsertProfile(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var req UpsertBarberProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	postal := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(req.PostalCode), " ", ""))

	var profile models.BarberProfile
	err := h.db.Where("user_id = ?", userID).First(&profile).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	profile.UserID = userID
	profile.ShopName = req.ShopName
	profile.Description = req.Description
	profile.Phone = req.Phone
	profile.AddressLine1 = req.AddressLine1
	profile.AddressLine2 = req.AddressLine2
	profile.City = req.City
	profile.Province = req.Province
	profile.PostalCode = postal
	profile.Latitude = req.Latitude
	profile.Longitude = req.Longitude

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_save_profile", "Could not save the profile.")
		return
	}

	if user.Role != models.RoleBarber && user.Role != models.RoleAdmin {
		if err := h.db.Model(&user).Update("role", models.RoleBarber).Error; err != nil {
			httperr.Internal(c, "failed_to_update_role", "Could not update the account role.")
			return
		}
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"profile": profile,
		"user":    userJSON(&user),
	})
}

// Nearby returns barbers filtered by postal-code prefix or city. The
// two filters are OR-combined; without any filter the list is capped
// lower to keep the unfiltered scan cheap.
func (h *BarberHandler) Nearby(c *gin.Context) {
	postal := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(c.Query("postalCode")), " ", ""))
	city := strings.TrimSpace(c.Query("city"))

	query := h.db.Model(&models.BarberProfile{})
	limit := nearbyDefaultLimit
	switch {
	case postal != "" && city != "":
		query = query.Where("postal_code LIKE ? OR LOWER(city) = ?", postal+"%", strings.ToLower(city))
		limit = nearbyFilteredLimit
	case postal != "":
		query = query.Where("postal_code LIKE ?", postal+"%")
		limit = nearbyFilteredLimit
	case city != "":
		query = query.Where("LOWER(city) = ?", strings.ToLower(city))
		limit = nearbyFilteredLimit
	}

	var profiles []models.BarberProfile
	if err := query.Order("shop_name ASC").Limit(limit).Find(&profiles).Error; err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	items, err := h.buildListItems(c, profiles)
	if err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *BarberHandler) GetOne(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var profile models.BarberProfile
	if err := h.db.First(&profile, uint(id)).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	items, err := h.buildListItems(c, []models.BarberProfile{profile})
	if err != nil || len(items) != 1 {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	reviews, err := h.reviews.ListForBarber(c.Request.Context(), profile.ID, profileReviewsLimit)
	if err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, BarberDetail{BarberListItem: items[0], Reviews: reviews})
}

func (h *BarberHandler) buildListItems(c *gin.Context, profiles []models.BarberProfile) ([]BarberListItem, error) {
	items := make([]BarberListItem, 0, len(profiles))
	if len(profiles) == 0 {
		return items, nil
	}

	profileIDs := make([]uint, 0, len(profiles))
	userIDs := make([]uint, 0, len(profiles))
	for _, p := range profiles {
		profileIDs = append(profileIDs, p.ID)
		userIDs = append(userIDs, p.UserID)
	}

	var services []models.Service
	if err := h.db.Where("barber_id IN ?", profileIDs).Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	servicesByBarber := make(map[uint][]models.Service, len(profiles))
	for _, s := range services {
		servicesByBarber[s.BarberID] = append(servicesByBarber[s.BarberID], s)
	}

	var users []models.User
	if err := h.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	usersByID := make(map[uint]models.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	stats, err := h.reviews.RatingStats(c.Request.Context(), profileIDs)
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		item := BarberListItem{
			BarberProfile: p,
			Services:      servicesByBarber[p.ID],
		}
		if item.Services == nil {
			item.Services = []models.Service{}
		}
		if u, ok := usersByID[p.UserID]; ok {
			item.Owner = dto.ClientSummary{ID: u.ID, FullName: u.FullName}
		}
		if st, ok := stats[p.ID]; ok {
			item.RatingAverage = st.Average
			item.RatingCount = st.Count
		}
		items = append(items, item)
	}
	return items, nil
}
