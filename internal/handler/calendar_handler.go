package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/service/schedule"
)

type CalendarHandler struct {
	scheduleService *schedule.Service
}

func NewCalendarHandler(scheduleService *schedule.Service) *CalendarHandler {
	return &CalendarHandler{scheduleService: scheduleService}
}

type bookingResponse struct {
	ID          string  `json:"id"`
	MemberID    string  `json:"member_id"`
	ProductCode string  `json:"product_code"`
	QuantityKg  float64 `json:"quantity_kg"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	SlotCount   int     `json:"slot_count"`
	Status      string  `json:"status"`
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:          b.ID,
		MemberID:    b.MemberID,
		ProductCode: b.ProductCode,
		QuantityKg:  b.QuantityKg,
		StartsAt:    b.StartsAt.Clock(),
		EndsAt:      b.EndsAt().Clock(),
		SlotCount:   b.SlotCount,
		Status:      string(b.Status),
	}
}

type dayScheduleResponse struct {
	Date     string            `json:"date"`
	Bookings []bookingResponse `json:"bookings"`
}

// HandleGetDay returns the schedule of one date; a date never booked is an
// empty schedule, not a 404.
func (h *CalendarHandler) HandleGetDay(c *gin.Context) {
	date, err := domain.ParseDayKey(c.Param("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	day, err := h.scheduleService.DayScheduleFor(c.Request.Context(), date)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to read day schedule",
			slog.String("date", domain.DayKey(date)),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to read day schedule")
		return
	}

	bookings := make([]bookingResponse, 0, len(day.Bookings))
	for _, b := range day.Bookings {
		bookings = append(bookings, toBookingResponse(b))
	}
	respondData(c, http.StatusOK, dayScheduleResponse{
		Date:     domain.DayKey(day.Date),
		Bookings: bookings,
	})
}

type planRequest struct {
	Date        string  `json:"date" binding:"required"`
	MemberID    string  `json:"member_id" binding:"required"`
	ProductCode string  `json:"product_code" binding:"required"`
	QuantityKg  float64 `json:"quantity_kg" binding:"required,gt=0"`
}

type planResponse struct {
	Booking bookingResponse `json:"booking"`
	Date    string          `json:"date"`
	Hours   float64         `json:"hours"`
}

type nextAvailableResponse struct {
	Date     string `json:"date"`
	StartsAt string `json:"starts_at"`
}

func (h *CalendarHandler) HandlePlan(c *gin.Context) {
	ctx := c.Request.Context()

	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	date, err := domain.ParseDayKey(req.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	result, err := h.scheduleService.PlanDelivery(ctx, schedule.PlanRequest{
		Date:        date,
		MemberID:    req.MemberID,
		ProductCode: req.ProductCode,
		QuantityKg:  req.QuantityKg,
	})
	switch {
	case err == nil:
		respondMessage(c, http.StatusCreated, "delivery planned", planResponse{
			Booking: toBookingResponse(result.Booking),
			Date:    domain.DayKey(date),
			Hours:   result.Estimate.Hours,
		})
	case errors.Is(err, domain.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "product not found")
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidTimeFactor):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoCapacity):
		h.respondNoCapacity(c, date, req)
	case errors.Is(err, domain.ErrDayConflict):
		respondError(c, http.StatusConflict, "day is being updated concurrently, retry")
	default:
		slog.ErrorContext(ctx, "failed to plan delivery",
			slog.String("date", req.Date),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to plan delivery")
	}
}

// respondNoCapacity answers a full day with the next date that could take
// the delivery, when one exists inside the horizon.
func (h *CalendarHandler) respondNoCapacity(c *gin.Context, date time.Time, req planRequest) {
	var data any
	alt, err := h.scheduleService.FindAvailability(c.Request.Context(), schedule.AvailabilityRequest{
		From:        date.AddDate(0, 0, 1),
		ProductCode: req.ProductCode,
		QuantityKg:  req.QuantityKg,
	})
	if err == nil && alt.Found {
		data = gin.H{"next_available": nextAvailableResponse{
			Date:     domain.DayKey(alt.Date),
			StartsAt: alt.Gap.Start.Clock(),
		}}
	}
	respondErrorData(c, http.StatusBadRequest, "no capacity on requested date", data)
}

type searchRequest struct {
	From        string  `json:"from" binding:"required"`
	ProductCode string  `json:"product_code" binding:"required"`
	QuantityKg  float64 `json:"quantity_kg" binding:"required,gt=0"`
}

type searchResponse struct {
	Date         string  `json:"date"`
	StartsAt     string  `json:"starts_at"`
	EndsAt       string  `json:"ends_at"`
	SlotCount    int     `json:"slot_count"`
	Hours        float64 `json:"hours"`
	DaysSearched int     `json:"days_searched"`
}

func (h *CalendarHandler) HandleSearch(c *gin.Context) {
	ctx := c.Request.Context()

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	from, err := domain.ParseDayKey(req.From)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
		return
	}

	result, err := h.scheduleService.FindAvailability(ctx, schedule.AvailabilityRequest{
		From:        from,
		ProductCode: req.ProductCode,
		QuantityKg:  req.QuantityKg,
	})
	switch {
	case err == nil && result.Found:
		respondData(c, http.StatusOK, searchResponse{
			Date:         domain.DayKey(result.Date),
			StartsAt:     result.Gap.Start.Clock(),
			EndsAt:       result.Gap.End.Clock(),
			SlotCount:    result.Estimate.SlotCount,
			Hours:        result.Estimate.Hours,
			DaysSearched: result.DaysSearched,
		})
	case err == nil:
		respondErrorData(c, http.StatusNotFound, "no availability within search horizon",
			gin.H{"days_searched": result.DaysSearched})
	case errors.Is(err, domain.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "product not found")
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidTimeFactor):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(ctx, "availability search failed",
			slog.String("from", req.From),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "availability search failed")
	}
}
