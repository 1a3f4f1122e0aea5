package repository

import (
	"context"

	"gorm.io/gorm"

	domain "barberhub/internal/domain/booking"
	"barberhub/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber profile
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.BarberProfile, error) {

	var profile models.BarberProfile
	if err := r.db.WithContext(ctx).First(&profile, barberID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *BookingGormRepository) GetBarberByUser(
	ctx context.Context,
	userID uint,
) (*models.BarberProfile, error) {

	var profile models.BarberProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// UpdateBookingStatus is a compare-and-swap on the status column, so two
// concurrent transitions for the same booking cannot both win.
func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uint,
	from domain.Status,
	to domain.Status,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *BookingGormRepository) ListBookingsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("scheduled_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("scheduled_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Batched lookups (list assembly without preloads)
// --------------------------------------------------

func (r *BookingGormRepository) ListServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return nil, nil
	}
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListBarbersByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.BarberProfile, error) {

	if len(ids) == 0 {
		return nil, nil
	}
	var profiles []models.BarberProfile
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *BookingGormRepository) ListUsersByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.User, error) {

	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// --------------------------------------------------
// Payment bridging
// --------------------------------------------------

func (r *BookingGormRepository) SetPaymentIntentID(
	ctx context.Context,
	bookingID uint,
	intentID string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("stripe_payment_intent_id", intentID).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
