package slots

import (
	"errors"
	"testing"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

func TestEstimateSlots(t *testing.T) {
	tests := []struct {
		name       string
		quantityKg float64
		timeFactor float64
		wantSlots  int
		wantHours  float64
	}{
		{name: "reference quantity", quantityKg: 500, timeFactor: 1.5, wantSlots: 3, wantHours: 1.5},
		{name: "double reference", quantityKg: 1000, timeFactor: 1.5, wantSlots: 6, wantHours: 3.0},
		{name: "partial slot rounds up", quantityKg: 600, timeFactor: 1.0, wantSlots: 3, wantHours: 1.5},
		{name: "tiny quantity floors to one slot", quantityKg: 10, timeFactor: 0.5, wantSlots: 1, wantHours: 0.5},
		{name: "fast factor", quantityKg: 500, timeFactor: 0.8, wantSlots: 2, wantHours: 1.0},
		{name: "slow factor", quantityKg: 750, timeFactor: 2.0, wantSlots: 6, wantHours: 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateSlots(tt.quantityKg, tt.timeFactor)
			if err != nil {
				t.Fatalf("EstimateSlots() error = %v", err)
			}
			if got.SlotCount != tt.wantSlots {
				t.Errorf("SlotCount = %d, want %d", got.SlotCount, tt.wantSlots)
			}
			if got.Hours != tt.wantHours {
				t.Errorf("Hours = %v, want %v", got.Hours, tt.wantHours)
			}
		})
	}
}

func TestEstimateSlots_QuantizedHoursMatchSlots(t *testing.T) {
	// Hours must always be the quantized figure, never the raw ratio.
	for _, quantity := range []float64{1, 250, 500, 777, 1500, 9999} {
		for _, factor := range []float64{0.1, 0.8, 1.0, 1.5, 2.0} {
			est, err := EstimateSlots(quantity, factor)
			if err != nil {
				t.Fatalf("EstimateSlots(%v, %v) error = %v", quantity, factor, err)
			}
			if est.SlotCount < 1 {
				t.Errorf("EstimateSlots(%v, %v) SlotCount = %d, want >= 1", quantity, factor, est.SlotCount)
			}
			want := float64(est.SlotCount) / domain.SlotsPerHour
			if est.Hours != want {
				t.Errorf("EstimateSlots(%v, %v) Hours = %v, want %v", quantity, factor, est.Hours, want)
			}
		}
	}
}

func TestEstimateSlots_InvalidInput(t *testing.T) {
	if _, err := EstimateSlots(0, 1.5); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("zero quantity error = %v, want ErrInvalidQuantity", err)
	}
	if _, err := EstimateSlots(-50, 1.5); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("negative quantity error = %v, want ErrInvalidQuantity", err)
	}
	if _, err := EstimateSlots(500, 0); !errors.Is(err, domain.ErrInvalidTimeFactor) {
		t.Errorf("zero factor error = %v, want ErrInvalidTimeFactor", err)
	}
	if _, err := EstimateSlots(500, -1); !errors.Is(err, domain.ErrInvalidTimeFactor) {
		t.Errorf("negative factor error = %v, want ErrInvalidTimeFactor", err)
	}
}
