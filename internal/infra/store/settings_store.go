package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

// Single-row table; settingsRowID is the only primary key value ever used.
const settingsRowID = 1

type windowSettingsModel struct {
	ID         uint   `gorm:"primaryKey"`
	OpensClock string `gorm:"size:5"`
	CloseClock string `gorm:"size:5"`
	UpdatedAt  time.Time
}

func (windowSettingsModel) TableName() string { return "window_settings" }

func (m windowSettingsModel) toDomain() (*domain.WindowSettings, error) {
	opens, err := domain.ParseClock(m.OpensClock)
	if err != nil {
		return nil, err
	}
	closes, err := domain.ParseClock(m.CloseClock)
	if err != nil {
		return nil, err
	}
	return &domain.WindowSettings{
		OpensAt:   opens,
		ClosesAt:  closes,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// SettingsStore implements domain.WindowSettingsStore.
type SettingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) OperatingWindow(ctx context.Context) (*domain.WindowSettings, error) {
	var m windowSettingsModel
	err := s.db.WithContext(ctx).First(&m, settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return m.toDomain()
}

// Save upserts the singleton row.
func (s *SettingsStore) Save(ctx context.Context, window domain.OperatingWindow) (*domain.WindowSettings, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	m := windowSettingsModel{
		ID:         settingsRowID,
		OpensClock: window.OpensAt.Clock(),
		CloseClock: window.ClosesAt.Clock(),
	}
	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return m.toDomain()
}

// EnsureDefault returns the stored window, creating it from def when the
// settings row does not exist yet.
func (s *SettingsStore) EnsureDefault(ctx context.Context, def domain.OperatingWindow) (*domain.WindowSettings, error) {
	settings, err := s.OperatingWindow(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		return s.Save(ctx, def)
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}
