package models

import "time"

const (
	RoleClient = "CLIENT"
	RoleBarber = "BARBER"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100;not null" json:"fullName"`
	Phone        string `gorm:"size:20" json:"phone,omitempty"`
	Role         string `gorm:"size:20;default:'CLIENT'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
