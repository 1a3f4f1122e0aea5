package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"index;not null" json:"clientId"`
	Client   User `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint          `gorm:"index;not null" json:"barberId"`
	Barber   BarberProfile `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
