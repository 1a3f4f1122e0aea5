package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"barberhub/internal/config"
	"barberhub/internal/db"
	"barberhub/internal/models"
)

// Seeds a demo barber with a small catalog so the API is browsable
// right after a fresh migration. Safe to run twice: it keys on email.
func main() {
	cfg := config.Load()
	database := db.NewDB(cfg)

	if err := db.Migrate(database); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	const email = "demo.barber@barberhub.dev"

	var existing models.User
	if err := database.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("seed already applied, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Marc Tremblay",
		Phone:        "+1 514 555 0142",
		Role:         models.RoleBarber,
	}
	if err := database.Create(&user).Error; err != nil {
		log.Fatalf("create user: %v", err)
	}

	lat, lng := 45.5231, -73.5817
	profile := models.BarberProfile{
		UserID:       user.ID,
		ShopName:     "Le Fade Montreal",
		Description:  "Walk-ins welcome, fades and beard work.",
		Phone:        user.Phone,
		AddressLine1: "4210 Boulevard Saint-Laurent",
		City:         "Montreal",
		Province:     "QC",
		PostalCode:   "H2W1Z4",
		Latitude:     &lat,
		Longitude:    &lng,
	}
	if err := database.Create(&profile).Error; err != nil {
		log.Fatalf("create profile: %v", err)
	}

	services := []models.Service{
		{BarberID: profile.ID, Name: "Classic Cut", Description: "Scissor and clipper cut.", DurationMin: 30, PriceCents: 3500},
		{BarberID: profile.ID, Name: "Cut + Beard", Description: "Full cut with beard shaping.", DurationMin: 50, PriceCents: 5000},
		{BarberID: profile.ID, Name: "Beard Trim", Description: "Line-up and hot towel finish.", DurationMin: 20, PriceCents: 2800},
	}
	if err := database.Create(&services).Error; err != nil {
		log.Fatalf("create services: %v", err)
	}

	log.Printf("seeded barber %q with %d services", profile.ShopName, len(services))
}
