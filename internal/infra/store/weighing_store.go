package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

type weighingModel struct {
	ID            uint   `gorm:"primaryKey"`
	WeighingID    string `gorm:"uniqueIndex;size:32"`
	MemberID      string `gorm:"index;size:32"`
	ProductCode   string `gorm:"index;size:32"`
	StartedAt     time.Time
	EndedAt       time.Time
	YieldCategory string `gorm:"size:64"`
	QuantityKg    float64
	CreatedAt     time.Time
}

func (weighingModel) TableName() string { return "weighings" }

func (m weighingModel) toDomain() domain.Weighing {
	return domain.Weighing{
		WeighingID:    m.WeighingID,
		MemberID:      m.MemberID,
		ProductCode:   m.ProductCode,
		StartedAt:     m.StartedAt,
		EndedAt:       m.EndedAt,
		YieldCategory: m.YieldCategory,
		QuantityKg:    m.QuantityKg,
		CreatedAt:     m.CreatedAt,
	}
}

type WeighingStore struct {
	db *gorm.DB
}

func NewWeighingStore(db *gorm.DB) *WeighingStore {
	return &WeighingStore{db: db}
}

func (s *WeighingStore) List(ctx context.Context) ([]domain.Weighing, error) {
	var models []weighingModel
	if err := s.db.WithContext(ctx).Order("started_at desc").Find(&models).Error; err != nil {
		return nil, err
	}
	weighings := make([]domain.Weighing, 0, len(models))
	for _, m := range models {
		weighings = append(weighings, m.toDomain())
	}
	return weighings, nil
}

func (s *WeighingStore) GetByWeighingID(ctx context.Context, weighingID string) (*domain.Weighing, error) {
	var m weighingModel
	err := s.db.WithContext(ctx).Where("weighing_id = ?", weighingID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrWeighingNotFound
	}
	if err != nil {
		return nil, err
	}
	w := m.toDomain()
	return &w, nil
}

// Create registers a weighing and increments the product's stored quantity
// in the same transaction, so the catalog total never drifts from the
// weighing log.
func (s *WeighingStore) Create(ctx context.Context, w domain.Weighing) (*domain.Weighing, error) {
	if w.QuantityKg <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	m := weighingModel{
		WeighingID:    w.WeighingID,
		MemberID:      w.MemberID,
		ProductCode:   w.ProductCode,
		StartedAt:     w.StartedAt,
		EndedAt:       w.EndedAt,
		YieldCategory: w.YieldCategory,
		QuantityKg:    w.QuantityKg,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		res := tx.Model(&productModel{}).
			Where("code = ?", w.ProductCode).
			UpdateColumn("stored_quantity_kg", gorm.Expr("stored_quantity_kg + ?", w.QuantityKg))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrProductNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, domain.ErrAlreadyExists
	}
	if err != nil {
		return nil, err
	}

	created := m.toDomain()
	return &created, nil
}
