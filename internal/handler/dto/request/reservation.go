package request

import (
	"github.com/erfanansari/reservation-app/internal/domain/schedule"
)

type CreateReservationRequest struct {
	Date     string `json:"date" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Duration string `json:"duration" binding:"required"`
}

func (r CreateReservationRequest) ParsedDate() (schedule.Day, error) {
	return schedule.ParseDay(r.Date)
}

func (r CreateReservationRequest) ParsedSpan() (schedule.Span, error) {
	return schedule.ParseSpan(r.Duration)
}
