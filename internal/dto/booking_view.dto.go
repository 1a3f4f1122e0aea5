package dto

import "time"

// Flat response shapes assembled by the use cases. Keeping these
// explicit avoids the hidden fetch graphs an ORM preload would imply.

type BarberSummary struct {
	ID         uint   `json:"id"`
	ShopName   string `json:"shopName"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

type ServiceSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"durationMin"`
	PriceCents  int64  `json:"priceCents"`
}

type ClientSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type BookingView struct {
	ID                    uint            `json:"id"`
	Status                string          `json:"status"`
	ScheduledAt           time.Time       `json:"scheduledAt"`
	TotalPriceCents       int64           `json:"totalPriceCents"`
	StripePaymentIntentID string          `json:"stripePaymentIntentId,omitempty"`
	Barber                *BarberSummary  `json:"barber,omitempty"`
	Service               *ServiceSummary `json:"service,omitempty"`
	Client                *ClientSummary  `json:"client,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
}
