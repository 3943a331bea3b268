package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
	"github.com/agrocoop-dev/delivery-scheduling/internal/service/schedule"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var handlerTestDate = time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T, calendar *domain.MockCalendarRepository, products *domain.MockProductCatalog) *gin.Engine {
	t.Helper()

	window := domain.OperatingWindow{OpensAt: 480, ClosesAt: 1080}
	svc := schedule.NewService(calendar, products, nil, nil, nil, nil, window, 5)
	h := NewCalendarHandler(svc)

	r := gin.New()
	r.GET("/api/v1/calendar/:date", h.HandleGetDay)
	r.POST("/api/v1/calendar/plan", h.HandlePlan)
	r.POST("/api/v1/calendar/search", h.HandleSearch)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestHandleGetDay_InvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newTestRouter(t, domain.NewMockCalendarRepository(ctrl), domain.NewMockProductCatalog(ctrl))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/06-04-2026", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeEnvelope(t, w); body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestHandleGetDay_EmptyDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calendar := domain.NewMockCalendarRepository(ctrl)
	calendar.EXPECT().DayScheduleFor(gomock.Any(), handlerTestDate).
		Return(domain.EmptyDaySchedule(handlerTestDate), nil)

	r := newTestRouter(t, calendar, domain.NewMockProductCatalog(ctrl))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/2026-04-06", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]any)
	if data["date"] != "2026-04-06" {
		t.Errorf("date = %v, want 2026-04-06", data["date"])
	}
	if bookings := data["bookings"].([]any); len(bookings) != 0 {
		t.Errorf("bookings = %d, want 0", len(bookings))
	}
}

func TestHandlePlan_CreatesBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	products := domain.NewMockProductCatalog(ctrl)
	products.EXPECT().GetByCode(gomock.Any(), "PROD001").
		Return(&domain.Product{Code: "PROD001", DeliveryTimeFactor: 1.5}, nil)

	calendar := domain.NewMockCalendarRepository(ctrl)
	calendar.EXPECT().DayScheduleFor(gomock.Any(), handlerTestDate).
		Return(domain.EmptyDaySchedule(handlerTestDate), nil)
	calendar.EXPECT().AppendBooking(gomock.Any(), handlerTestDate, gomock.Any(), int64(0)).
		Return(nil)

	r := newTestRouter(t, calendar, products)

	payload := `{"date":"2026-04-06","member_id":"SOC001","product_code":"PROD001","quantity_kg":500}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/plan", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]any)
	booking := data["booking"].(map[string]any)
	if booking["starts_at"] != "08:00" || booking["ends_at"] != "09:30" {
		t.Errorf("booking window = %v-%v, want 08:00-09:30", booking["starts_at"], booking["ends_at"])
	}
}

func TestHandlePlan_UnknownProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	products := domain.NewMockProductCatalog(ctrl)
	products.EXPECT().GetByCode(gomock.Any(), "PROD404").
		Return(nil, domain.ErrProductNotFound)

	r := newTestRouter(t, domain.NewMockCalendarRepository(ctrl), products)

	payload := `{"date":"2026-04-06","member_id":"SOC001","product_code":"PROD404","quantity_kg":500}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/plan", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHandlePlan_NoCapacitySuggestsNextDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day1 := handlerTestDate.AddDate(0, 0, 1)
	full := []domain.Booking{
		domain.NewBooking("b-1", "SOC002", "PROD001", 3000, 480, 20),
	}

	products := domain.NewMockProductCatalog(ctrl)
	products.EXPECT().GetByCode(gomock.Any(), "PROD001").
		Return(&domain.Product{Code: "PROD001", DeliveryTimeFactor: 1.5}, nil).Times(2)

	calendar := domain.NewMockCalendarRepository(ctrl)
	calendar.EXPECT().DayScheduleFor(gomock.Any(), handlerTestDate).
		Return(&domain.DaySchedule{Date: handlerTestDate, Bookings: full, Revision: 1}, nil)
	calendar.EXPECT().BookingsOn(gomock.Any(), day1).Return(nil, nil)

	r := newTestRouter(t, calendar, products)

	payload := `{"date":"2026-04-06","member_id":"SOC001","product_code":"PROD001","quantity_kg":500}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/plan", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]any)
	next := data["next_available"].(map[string]any)
	if next["date"] != "2026-04-07" || next["starts_at"] != "08:00" {
		t.Errorf("next available = %v, want 2026-04-07 08:00", next)
	}
}

func TestHandleSearch_HorizonExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	full := []domain.Booking{
		domain.NewBooking("b-1", "SOC002", "PROD001", 3000, 480, 20),
	}

	products := domain.NewMockProductCatalog(ctrl)
	products.EXPECT().GetByCode(gomock.Any(), "PROD001").
		Return(&domain.Product{Code: "PROD001", DeliveryTimeFactor: 1.5}, nil)

	calendar := domain.NewMockCalendarRepository(ctrl)
	calendar.EXPECT().BookingsOn(gomock.Any(), gomock.Any()).Return(full, nil).Times(5)

	r := newTestRouter(t, calendar, products)

	payload := `{"from":"2026-04-06","product_code":"PROD001","quantity_kg":500}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calendar/search", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", w.Code, w.Body.String())
	}
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]any)
	if data["days_searched"] != float64(5) {
		t.Errorf("days_searched = %v, want 5", data["days_searched"])
	}
}
