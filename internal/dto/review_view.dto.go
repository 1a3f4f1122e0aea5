package dto

import "time"

type ReviewView struct {
	ID        uint          `json:"id"`
	BarberID  uint          `json:"barberId"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment,omitempty"`
	Client    ClientSummary `json:"client"`
	CreatedAt time.Time     `json:"createdAt"`
}

// RatingStats is always derived from the review rows at read time.
// Average is nil when the barber has no reviews yet.
type RatingStats struct {
	Average *float64 `json:"ratingAverage"`
	Count   int      `json:"ratingCount"`
}

type ReviewListView struct {
	Reviews       []ReviewView `json:"reviews"`
	RatingAverage *float64     `json:"ratingAverage"`
	RatingCount   int          `json:"ratingCount"`
}
