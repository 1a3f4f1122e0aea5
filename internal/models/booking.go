package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index;not null" json:"clientId"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint          `gorm:"index;not null" json:"barberId"`
	Barber   BarberProfile `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `gorm:"not null" json:"serviceId"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ScheduledAt time.Time `gorm:"index" json:"scheduledAt"`
	Status      string    `gorm:"size:20;default:'PENDING';index" json:"status"`

	// Snapshot of the service price at creation time; never recomputed.
	TotalPriceCents int64 `json:"totalPriceCents"`

	StripePaymentIntentID string `gorm:"size:100" json:"stripePaymentIntentId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
