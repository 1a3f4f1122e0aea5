package repository

import (
	"context"

	"gorm.io/gorm"

	domain "barberhub/internal/domain/booking"
	"barberhub/internal/dto"
	"barberhub/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.BarberProfile, error) {

	var profile models.BarberProfile
	if err := r.db.WithContext(ctx).First(&profile, barberID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ReviewGormRepository) GetUser(
	ctx context.Context,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// HasQualifyingBooking reports whether the client holds at least one
// CONFIRMED or COMPLETED booking with the barber.
func (r *ReviewGormRepository) HasQualifyingBooking(
	ctx context.Context,
	clientID uint,
	barberID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"client_id = ? AND barber_id = ? AND status IN ?",
			clientID,
			barberID,
			[]string{string(domain.StatusConfirmed), string(domain.StatusCompleted)},
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

// ListForBarber returns the barber's reviews, newest first, with the
// reviewer's name joined in. limit <= 0 means no cap.
func (r *ReviewGormRepository) ListForBarber(
	ctx context.Context,
	barberID uint,
	limit int,
) ([]dto.ReviewView, error) {

	var reviews []models.Review
	q := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&reviews).Error; err != nil {
		return nil, err
	}

	clientIDs := make([]uint, 0, len(reviews))
	seen := make(map[uint]bool)
	for _, rv := range reviews {
		if !seen[rv.ClientID] {
			seen[rv.ClientID] = true
			clientIDs = append(clientIDs, rv.ClientID)
		}
	}

	nameByID := make(map[uint]string, len(clientIDs))
	if len(clientIDs) > 0 {
		var users []models.User
		if err := r.db.WithContext(ctx).
			Where("id IN ?", clientIDs).
			Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			nameByID[u.ID] = u.FullName
		}
	}

	views := make([]dto.ReviewView, 0, len(reviews))
	for _, rv := range reviews {
		views = append(views, dto.ReviewView{
			ID:       rv.ID,
			BarberID: rv.BarberID,
			Rating:   rv.Rating,
			Comment:  rv.Comment,
			Client: dto.ClientSummary{
				ID:       rv.ClientID,
				FullName: nameByID[rv.ClientID],
			},
			CreatedAt: rv.CreatedAt,
		})
	}
	return views, nil
}

type ratingRow struct {
	BarberID uint
	Avg      float64
	Cnt      int
}

// RatingStats aggregates straight off the review rows; there is no
// cached counter to drift out of sync.
func (r *ReviewGormRepository) RatingStats(
	ctx context.Context,
	barberIDs []uint,
) (map[uint]dto.RatingStats, error) {

	stats := make(map[uint]dto.RatingStats, len(barberIDs))
	if len(barberIDs) == 0 {
		return stats, nil
	}

	var rows []ratingRow
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("barber_id, AVG(rating) AS avg, COUNT(*) AS cnt").
		Where("barber_id IN ?", barberIDs).
		Group("barber_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		avg := row.Avg
		stats[row.BarberID] = dto.RatingStats{Average: &avg, Count: row.Cnt}
	}
	return stats, nil
}
