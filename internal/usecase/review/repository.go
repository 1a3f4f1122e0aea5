package review

import (
	"context"

	"barberhub/internal/dto"
	"barberhub/internal/models"
)

type Repository interface {
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.BarberProfile, error)

	GetUser(
		ctx context.Context,
		userID uint,
	) (*models.User, error)

	HasQualifyingBooking(
		ctx context.Context,
		clientID uint,
		barberID uint,
	) (bool, error)

	CreateReview(
		ctx context.Context,
		rv *models.Review,
	) error

	ListForBarber(
		ctx context.Context,
		barberID uint,
		limit int,
	) ([]dto.ReviewView, error)

	RatingStats(
		ctx context.Context,
		barberIDs []uint,
	) (map[uint]dto.RatingStats, error)
}
