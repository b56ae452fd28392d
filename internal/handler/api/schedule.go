package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/erfanansari/reservation-app/internal/domain/schedule"
	reqdto "github.com/erfanansari/reservation-app/internal/handler/dto/request"
	resdto "github.com/erfanansari/reservation-app/internal/handler/dto/response"
	"github.com/erfanansari/reservation-app/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleUseCase usecase.ScheduleUseCase
}

func NewScheduleHandler(scheduleUseCase usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUseCase: scheduleUseCase,
	}
}

// @Summary Get day overview
// @Description Capacity, state, selectability, occupancy and bookable options for one date
// @Tags days
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayResponse
// @Failure 400 {object} map[string]string
// @Router /days/{date} [get]
func (h *ScheduleHandler) GetDay(c *gin.Context) {
	date, ok := h.parseDate(c)
	if !ok {
		return
	}

	view := h.scheduleUseCase.GetDay(date)
	c.JSON(http.StatusOK, resdto.FromDayView(view))
}

// @Summary Get bookable options
// @Description Durations that may still be booked for the date
// @Tags days
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} resdto.OptionsResponse
// @Failure 400 {object} map[string]string
// @Router /days/{date}/options [get]
func (h *ScheduleHandler) GetOptions(c *gin.Context) {
	date, ok := h.parseDate(c)
	if !ok {
		return
	}

	options := h.scheduleUseCase.GetOptions(date)
	c.JSON(http.StatusOK, resdto.OptionsResponse{
		Date:    date.String(),
		Options: resdto.SpanStrings(options),
	})
}

// @Summary List reservations
// @Description Reservations for the date in booking order
// @Tags days
// @Produce json
// @Param date path string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Router /days/{date}/reservations [get]
func (h *ScheduleHandler) ListReservations(c *gin.Context) {
	date, ok := h.parseDate(c)
	if !ok {
		return
	}

	reservations := h.scheduleUseCase.ListReservations(date)
	c.JSON(http.StatusOK, resdto.FromReservations(date, reservations))
}

// @Summary Create reservation
// @Description Book hours, or the rest of the day, on a working day
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ScheduleHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParsedDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	span, err := req.ParsedSpan()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid duration, expected 1-8 or \"next workday\"",
		})
		return
	}

	result, err := h.scheduleUseCase.Accept(c.Request.Context(), date, req.Name, span)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrEmptyRequester):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Name must not be empty",
			})
		case errors.Is(err, schedule.ErrNonWorkday):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Date falls on a weekend",
			})
		case errors.Is(err, schedule.ErrPastDate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Date is in the past",
			})
		case errors.Is(err, schedule.ErrDayFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Day is fully booked",
			})
		case errors.Is(err, schedule.ErrDuplicateRequester):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A reservation with this name already exists for the day",
			})
		case errors.Is(err, schedule.ErrSpanUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested duration exceeds remaining capacity",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if result.PersistErr != nil {
		// Acceptance holds in memory; operators retry persistence.
		slog.Error("reservation accepted but snapshot save failed",
			"date", date.String(),
			"reservation_id", result.Reservation.ID(),
			"error", result.PersistErr,
		)
	}

	c.JSON(http.StatusCreated, resdto.FromAcceptResult(date, result))
}

func (h *ScheduleHandler) parseDate(c *gin.Context) (schedule.Day, bool) {
	date, err := schedule.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return schedule.Day{}, false
	}
	return date, true
}
