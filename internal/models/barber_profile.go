package models

import "time"

type BarberProfile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ShopName    string `gorm:"size:100;not null" json:"shopName"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	Phone       string `gorm:"size:20" json:"phone,omitempty"`

	AddressLine1 string `gorm:"size:255" json:"addressLine1"`
	AddressLine2 string `gorm:"size:255" json:"addressLine2,omitempty"`
	City         string `gorm:"size:100;index" json:"city"`
	Province     string `gorm:"size:50" json:"province"`
	PostalCode   string `gorm:"size:10;index" json:"postalCode"`

	// Stored for a future geo search; the nearby endpoint matches on
	// postal code / city only.
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
