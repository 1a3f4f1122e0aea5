package models

import "time"

type Service struct {
	ID       uint          `gorm:"primaryKey" json:"id"`
	BarberID uint          `gorm:"index;not null" json:"barberId"`
	Barber   BarberProfile `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	DurationMin int    `json:"durationMin"`
	PriceCents  int64  `json:"priceCents"`
	ImageURL    string `gorm:"size:500" json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
