package booking

import (
	"context"

	"barberhub/internal/models"
)

type Repository interface {
	// -------- Barber profile --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.BarberProfile, error)

	GetBarberByUser(
		ctx context.Context,
		userID uint,
	) (*models.BarberProfile, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Booking --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// UpdateBookingStatus applies the transition as a single conditional
	// update (status must still equal from). Returns false when the row
	// was concurrently moved to another status.
	UpdateBookingStatus(
		ctx context.Context,
		id uint,
		from Status,
		to Status,
	) (bool, error)

	ListBookingsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	ListBookingsForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Booking, error)

	// -------- Batched lookups for list assembly --------
	ListServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	ListBarbersByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.BarberProfile, error)

	ListUsersByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.User, error)
}
