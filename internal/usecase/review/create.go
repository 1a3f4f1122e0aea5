package review

import (
	"context"

	"barberhub/internal/audit"
	"barberhub/internal/dto"
	"barberhub/internal/httperr"
	"barberhub/internal/models"
)

type CreateReviewInput struct {
	ClientID uint
	BarberID uint
	Rating   int
	Comment  string
}

type CreateReview struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCreateReview(
	repo Repository,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*dto.ReviewView, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.NotFoundError("barber_not_found", "Barber not found.")
	}

	if barber.UserID == in.ClientID {
		return nil, httperr.ForbiddenError(
			"self_review",
			"You cannot review your own profile.",
		)
	}

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ValidationError(
			"invalid_rating",
			"Rating must be between 1 and 5.",
		)
	}

	// Reviews are gated on real booking history with this barber.
	ok, err := uc.repo.HasQualifyingBooking(ctx, in.ClientID, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ForbiddenError(
			"review_not_allowed",
			"You need at least one confirmed or completed booking with this barber to leave a review.",
		)
	}

	rv := &models.Review{
		ClientID: in.ClientID,
		BarberID: in.BarberID,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}

	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &rv.ID,
	})

	client := dto.ClientSummary{ID: in.ClientID}
	if u, err := uc.repo.GetUser(ctx, in.ClientID); err == nil {
		client.FullName = u.FullName
	}

	return &dto.ReviewView{
		ID:        rv.ID,
		BarberID:  rv.BarberID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		Client:    client,
		CreatedAt: rv.CreatedAt,
	}, nil
}
