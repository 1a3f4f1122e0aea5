package review

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"barberhub/internal/audit"
	"barberhub/internal/db"
	"barberhub/internal/httperr"
	"barberhub/internal/infra/repository"
	"barberhub/internal/models"
)

type testEnv struct {
	db     *gorm.DB
	repo   *repository.ReviewGormRepository
	client models.User
	barber models.User
	shop   models.BarberProfile
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	env := &testEnv{
		db:   gdb,
		repo: repository.NewReviewGormRepository(gdb),
	}

	env.client = models.User{Email: "client@test.dev", PasswordHash: "x", FullName: "Ana Costa", Role: models.RoleClient}
	require.NoError(t, gdb.Create(&env.client).Error)

	env.barber = models.User{Email: "barber@test.dev", PasswordHash: "x", FullName: "Marc Tremblay", Role: models.RoleBarber}
	require.NoError(t, gdb.Create(&env.barber).Error)

	env.shop = models.BarberProfile{
		UserID:     env.barber.ID,
		ShopName:   "Le Fade",
		City:       "Montreal",
		Province:   "QC",
		PostalCode: "H2W1Z4",
	}
	require.NoError(t, gdb.Create(&env.shop).Error)

	return env
}

func (e *testEnv) dispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(e.db), zap.NewNop())
}

func (e *testEnv) addBooking(t *testing.T, clientID uint, status string) {
	t.Helper()

	svc := models.Service{BarberID: e.shop.ID, Name: "Cut", DurationMin: 30, PriceCents: 3500}
	require.NoError(t, e.db.Create(&svc).Error)

	b := models.Booking{
		ClientID:        clientID,
		BarberID:        e.shop.ID,
		ServiceID:       svc.ID,
		ScheduledAt:     time.Now().Add(-24 * time.Hour),
		Status:          status,
		TotalPriceCents: svc.PriceCents,
	}
	require.NoError(t, e.db.Create(&b).Error)
}

func TestCreateReviewRequiresBooking(t *testing.T) {
	env := newTestEnv(t)

	uc := NewCreateReview(env.repo, env.dispatcher())
	_, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID: env.client.ID,
		BarberID: env.shop.ID,
		Rating:   5,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "review_not_allowed"))
}

func TestCreateReviewPendingBookingDoesNotQualify(t *testing.T) {
	env := newTestEnv(t)
	env.addBooking(t, env.client.ID, "PENDING")

	uc := NewCreateReview(env.repo, env.dispatcher())
	_, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID: env.client.ID,
		BarberID: env.shop.ID,
		Rating:   4,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "review_not_allowed"))
}

func TestCreateReviewAfterCompletedBooking(t *testing.T) {
	env := newTestEnv(t)
	env.addBooking(t, env.client.ID, "COMPLETED")

	uc := NewCreateReview(env.repo, env.dispatcher())
	view, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID: env.client.ID,
		BarberID: env.shop.ID,
		Rating:   5,
		Comment:  "Great fade.",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, view.Rating)
	assert.Equal(t, "Great fade.", view.Comment)
	assert.Equal(t, "Ana Costa", view.Client.FullName)
}

func TestCreateReviewSelfReview(t *testing.T) {
	env := newTestEnv(t)
	env.addBooking(t, env.barber.ID, "COMPLETED")

	uc := NewCreateReview(env.repo, env.dispatcher())
	_, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID: env.barber.ID,
		BarberID: env.shop.ID,
		Rating:   5,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "self_review"))
}

func TestCreateReviewRatingBounds(t *testing.T) {
	env := newTestEnv(t)
	env.addBooking(t, env.client.ID, "CONFIRMED")

	uc := NewCreateReview(env.repo, env.dispatcher())
	for _, rating := range []int{0, -1, 6} {
		_, err := uc.Execute(context.Background(), CreateReviewInput{
			ClientID: env.client.ID,
			BarberID: env.shop.ID,
			Rating:   rating,
		})
		require.Error(t, err, rating)
		assert.True(t, httperr.IsBusiness(err, "invalid_rating"))
	}
}

func TestListForBarberStats(t *testing.T) {
	env := newTestEnv(t)

	second := models.User{Email: "second@test.dev", PasswordHash: "x", FullName: "Jo Silva", Role: models.RoleClient}
	require.NoError(t, env.db.Create(&second).Error)

	for _, r := range []models.Review{
		{ClientID: env.client.ID, BarberID: env.shop.ID, Rating: 5, Comment: "Sharp."},
		{ClientID: second.ID, BarberID: env.shop.ID, Rating: 2},
	} {
		require.NoError(t, env.db.Create(&r).Error)
	}

	uc := NewListForBarber(env.repo)
	view, err := uc.Execute(context.Background(), env.shop.ID)
	require.NoError(t, err)

	require.Len(t, view.Reviews, 2)
	assert.Equal(t, 2, view.RatingCount)
	require.NotNil(t, view.RatingAverage)
	assert.InDelta(t, 3.5, *view.RatingAverage, 0.001)
}

func TestListForBarberNoReviews(t *testing.T) {
	env := newTestEnv(t)

	uc := NewListForBarber(env.repo)
	view, err := uc.Execute(context.Background(), env.shop.ID)
	require.NoError(t, err)

	assert.Empty(t, view.Reviews)
	assert.Equal(t, 0, view.RatingCount)
	assert.Nil(t, view.RatingAverage)
}

func TestListForBarberUnknownBarber(t *testing.T) {
	env := newTestEnv(t)

	uc := NewListForBarber(env.repo)
	_, err := uc.Execute(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}
