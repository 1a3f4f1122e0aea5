package booking

import (
	"barberhub/internal/dto"
	"barberhub/internal/models"
)

func barberSummary(p *models.BarberProfile) *dto.BarberSummary {
	if p == nil {
		return nil
	}
	return &dto.BarberSummary{
		ID:         p.ID,
		ShopName:   p.ShopName,
		City:       p.City,
		Province:   p.Province,
		PostalCode: p.PostalCode,
	}
}

func serviceSummary(s *models.Service) *dto.ServiceSummary {
	if s == nil {
		return nil
	}
	return &dto.ServiceSummary{
		ID:          s.ID,
		Name:        s.Name,
		DurationMin: s.DurationMin,
		PriceCents:  s.PriceCents,
	}
}

func clientSummary(u *models.User) *dto.ClientSummary {
	if u == nil {
		return nil
	}
	return &dto.ClientSummary{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

func bookingView(b *models.Booking) dto.BookingView {
	return dto.BookingView{
		ID:                    b.ID,
		Status:                b.Status,
		ScheduledAt:           b.ScheduledAt,
		TotalPriceCents:       b.TotalPriceCents,
		StripePaymentIntentID: b.StripePaymentIntentID,
		CreatedAt:             b.CreatedAt,
	}
}
