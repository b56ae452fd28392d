package response

import (
	"time"

	"github.com/erfanansari/reservation-app/internal/domain/schedule"
	"github.com/erfanansari/reservation-app/internal/usecase"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	Name         string    `json:"name"`
	Duration     string    `json:"duration"`
	DurationText string    `json:"durationText"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateReservationResponse struct {
	ReservationResponse
	Persisted bool `json:"persisted"`
}

type DayResponse struct {
	Date           string   `json:"date"`
	ConsumedHours  int      `json:"consumedHours"`
	RemainingHours int      `json:"remainingHours"`
	State          string   `json:"state"`
	Selectable     bool     `json:"selectable"`
	Occupancy      int      `json:"occupancy,omitempty"`
	Options        []string `json:"options"`
}

type OptionsResponse struct {
	Date    string   `json:"date"`
	Options []string `json:"options"`
}

type ReservationListResponse struct {
	Date         string                `json:"date"`
	Reservations []ReservationResponse `json:"reservations"`
}

func FromReservation(date schedule.Day, r *schedule.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           r.ID(),
		Date:         date.String(),
		Name:         r.Requester(),
		Duration:     r.Span().String(),
		DurationText: r.Span().Text(),
		CreatedAt:    r.CreatedAt(),
	}
}

func FromAcceptResult(date schedule.Day, result *usecase.AcceptResult) CreateReservationResponse {
	return CreateReservationResponse{
		ReservationResponse: FromReservation(date, result.Reservation),
		Persisted:           result.PersistErr == nil,
	}
}

func FromDayView(view *usecase.DayView) DayResponse {
	return DayResponse{
		Date:           view.Day.String(),
		ConsumedHours:  view.ConsumedHours,
		RemainingHours: view.RemainingHours,
		State:          string(view.State),
		Selectable:     view.Selectable,
		Occupancy:      view.Occupancy,
		Options:        SpanStrings(view.Options),
	}
}

func FromReservations(date schedule.Day, reservations []*schedule.Reservation) ReservationListResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, FromReservation(date, r))
	}
	return ReservationListResponse{Date: date.String(), Reservations: out}
}

func SpanStrings(spans []schedule.Span) []string {
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.String())
	}
	return out
}
