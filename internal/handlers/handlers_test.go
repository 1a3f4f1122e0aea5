package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"barberhub/internal/config"
	"barberhub/internal/db"
	"barberhub/internal/models"
	"barberhub/internal/routes"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		StripeCurrency:     "cad",
		AuthRateLimitRPS:   1000,
		AuthRateLimitBurst: 1000,
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:     gdb,
		Config: cfg,
		Log:    zap.NewNop(),
	})
	return r, gdb
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    email,
		"password": "secret123",
		"fullName": "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "Ana@Example.COM",
		"password": "secret123",
		"fullName": "Ana Costa",
		"phone":    "+1 514 555 0100",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "ana@example.com", created.User.Email, "emails are normalized")
	assert.Equal(t, models.RoleClient, created.User.Role)
	assert.NotEmpty(t, created.AccessToken)

	// Same mailbox, different casing.
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "ana@example.com",
		"password": "secret123",
		"fullName": "Ana Again",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email_already_used")

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "ana@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestGetMe(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerUser(t, r, "me@example.com")

	w := doJSON(t, r, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "me@example.com")

	w = doJSON(t, r, http.MethodGet, "/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpsertProfilePromotesRole(t *testing.T) {
	r, gdb := newTestServer(t)
	token := registerUser(t, r, "shop@example.com")

	w := doJSON(t, r, http.MethodPost, "/barbers/profile", token, gin.H{
		"shopName":     "Le Fade",
		"addressLine1": "4210 Boulevard Saint-Laurent",
		"city":         "Montreal",
		"province":     "QC",
		"postalCode":   "h2w 1z4",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"postalCode":"H2W1Z4"`)

	var user models.User
	require.NoError(t, gdb.Where("email = ?", "shop@example.com").First(&user).Error)
	assert.Equal(t, models.RoleBarber, user.Role)

	// Second call updates in place.
	w = doJSON(t, r, http.MethodPost, "/barbers/profile", token, gin.H{
		"shopName":     "Le Fade 2",
		"addressLine1": "4210 Boulevard Saint-Laurent",
		"city":         "Montreal",
		"province":     "QC",
		"postalCode":   "H2W1Z4",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	gdb.Model(&models.BarberProfile{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func seedBarber(t *testing.T, gdb *gorm.DB, email, shop, city, postal string) models.BarberProfile {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "x", FullName: "Owner " + shop, Role: models.RoleBarber}
	require.NoError(t, gdb.Create(&user).Error)

	profile := models.BarberProfile{
		UserID:     user.ID,
		ShopName:   shop,
		City:       city,
		Province:   "QC",
		PostalCode: postal,
	}
	require.NoError(t, gdb.Create(&profile).Error)

	svc := models.Service{BarberID: profile.ID, Name: "Cut", DurationMin: 30, PriceCents: 3500}
	require.NoError(t, gdb.Create(&svc).Error)
	return profile
}

func TestNearbyFilters(t *testing.T) {
	r, gdb := newTestServer(t)
	seedBarber(t, gdb, "mtl@example.com", "Le Fade", "Montreal", "H2W1Z4")
	seedBarber(t, gdb, "laval@example.com", "North Cuts", "Laval", "H7A1A1")

	type item struct {
		ShopName    string           `json:"shopName"`
		Services    []models.Service `json:"services"`
		RatingCount int              `json:"ratingCount"`
	}
	list := func(path string) []item {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var items []item
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		return items
	}

	all := list("/barbers/nearby")
	assert.Len(t, all, 2)

	byPostal := list("/barbers/nearby?postalCode=h2w")
	require.Len(t, byPostal, 1)
	assert.Equal(t, "Le Fade", byPostal[0].ShopName)
	assert.Len(t, byPostal[0].Services, 1)
	assert.Zero(t, byPostal[0].RatingCount)

	byCity := list("/barbers/nearby?city=LAVAL")
	require.Len(t, byCity, 1)
	assert.Equal(t, "North Cuts", byCity[0].ShopName)

	either := list("/barbers/nearby?postalCode=h2w&city=laval")
	assert.Len(t, either, 2)

	none := list("/barbers/nearby?city=Quebec")
	assert.Empty(t, none)
}

func TestBarberDetailIncludesReviews(t *testing.T) {
	r, gdb := newTestServer(t)
	profile := seedBarber(t, gdb, "mtl@example.com", "Le Fade", "Montreal", "H2W1Z4")

	client := models.User{Email: "client@example.com", PasswordHash: "x", FullName: "Ana Costa", Role: models.RoleClient}
	require.NoError(t, gdb.Create(&client).Error)
	require.NoError(t, gdb.Create(&models.Review{
		ClientID: client.ID,
		BarberID: profile.ID,
		Rating:   4,
		Comment:  "Solid cut.",
	}).Error)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/barbers/%d", profile.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detail struct {
		ShopName      string   `json:"shopName"`
		RatingAverage *float64 `json:"ratingAverage"`
		RatingCount   int      `json:"ratingCount"`
		Reviews       []struct {
			Rating int `json:"rating"`
		} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Le Fade", detail.ShopName)
	require.NotNil(t, detail.RatingAverage)
	assert.InDelta(t, 4.0, *detail.RatingAverage, 0.001)
	assert.Equal(t, 1, detail.RatingCount)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, 4, detail.Reviews[0].Rating)
}

func TestServiceManagementRequiresBarberRole(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerUser(t, r, "client@example.com")

	w := doJSON(t, r, http.MethodPost, "/barbers/me/services", token, gin.H{
		"name":        "Cut",
		"durationMin": 30,
		"priceCents":  3500,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient_role")
}

func TestServiceLifecycle(t *testing.T) {
	r, _ := newTestServer(t)

	// Creating a profile promotes the role, but the old token still
	// says CLIENT; log in again for a fresh one.
	token := registerUser(t, r, "shop2@example.com")
	w := doJSON(t, r, http.MethodPost, "/barbers/profile", token, gin.H{
		"shopName":     "Le Fade",
		"addressLine1": "4210 Boulevard Saint-Laurent",
		"city":         "Montreal",
		"province":     "QC",
		"postalCode":   "H2W1Z4",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "shop2@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doJSON(t, r, http.MethodPost, "/barbers/me/services", login.AccessToken, gin.H{
		"name":        "Classic Cut",
		"durationMin": 30,
		"priceCents":  3500,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var svc models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svc))

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/barbers/me/services/%d", svc.ID), login.AccessToken, gin.H{
		"priceCents": 4000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svc))
	assert.EqualValues(t, 4000, svc.PriceCents)
	assert.Equal(t, "Classic Cut", svc.Name, "partial update keeps other fields")

	w = doJSON(t, r, http.MethodGet, "/barbers/me/services", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var services []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	assert.Len(t, services, 1)
}

func TestBookingEndpointsRequireAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/bookings", "", gin.H{
		"barberId":    1,
		"serviceId":   1,
		"scheduledAt": "2026-09-01T14:00:00Z",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := registerUser(t, r, "client@example.com")
	w = doJSON(t, r, http.MethodGet, "/bookings/barber/me", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient_role")
}

func TestCreateBookingOverHTTP(t *testing.T) {
	r, gdb := newTestServer(t)
	profile := seedBarber(t, gdb, "mtl@example.com", "Le Fade", "Montreal", "H2W1Z4")

	var svc models.Service
	require.NoError(t, gdb.Where("barber_id = ?", profile.ID).First(&svc).Error)

	token := registerUser(t, r, "client@example.com")

	w := doJSON(t, r, http.MethodPost, "/bookings", token, gin.H{
		"barberId":    profile.ID,
		"serviceId":   svc.ID,
		"scheduledAt": "not-a-timestamp",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_scheduled_at")

	w = doJSON(t, r, http.MethodPost, "/bookings", token, gin.H{
		"barberId":    profile.ID,
		"serviceId":   svc.ID,
		"scheduledAt": "2026-09-01T14:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"PENDING"`)
	assert.Contains(t, w.Body.String(), `"totalPriceCents":3500`)

	w = doJSON(t, r, http.MethodGet, "/bookings/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)
}
