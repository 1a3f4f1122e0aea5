package review

import (
	"context"

	"barberhub/internal/dto"
	"barberhub/internal/httperr"
)

type ListForBarber struct {
	repo Repository
}

func NewListForBarber(repo Repository) *ListForBarber {
	return &ListForBarber{repo: repo}
}

func (uc *ListForBarber) Execute(
	ctx context.Context,
	barberID uint,
) (*dto.ReviewListView, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.NotFoundError("barber_not_found", "Barber not found.")
	}

	reviews, err := uc.repo.ListForBarber(ctx, barberID, 0)
	if err != nil {
		return nil, err
	}

	stats, err := uc.repo.RatingStats(ctx, []uint{barberID})
	if err != nil {
		return nil, err
	}

	view := &dto.ReviewListView{
		Reviews: reviews,
	}
	if s, ok := stats[barberID]; ok {
		view.RatingAverage = s.Average
		view.RatingCount = s.Count
	}
	return view, nil
}
