package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

type productModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Code               string `gorm:"uniqueIndex;size:32"`
	Description        string `gorm:"size:256"`
	Category           string `gorm:"size:64"`
	ContainerType      string `gorm:"size:64"`
	StoredQuantityKg   float64
	DeliveryTimeFactor float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (productModel) TableName() string { return "products" }

func (m productModel) toDomain() domain.Product {
	return domain.Product{
		Code:               m.Code,
		Description:        m.Description,
		Category:           m.Category,
		ContainerType:      m.ContainerType,
		StoredQuantityKg:   m.StoredQuantityKg,
		DeliveryTimeFactor: m.DeliveryTimeFactor,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ProductStore implements domain.ProductCatalog for the scheduling path and
// the full CRUD surface for the catalog API.
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	var models []productModel
	if err := s.db.WithContext(ctx).Order("code").Find(&models).Error; err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(models))
	for _, m := range models {
		products = append(products, m.toDomain())
	}
	return products, nil
}

func (s *ProductStore) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	var m productModel
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	p := m.toDomain()
	return &p, nil
}

func (s *ProductStore) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.DeliveryTimeFactor <= 0 {
		return nil, domain.ErrInvalidTimeFactor
	}
	m := productModel{
		Code:               p.Code,
		Description:        p.Description,
		Category:           p.Category,
		ContainerType:      p.ContainerType,
		StoredQuantityKg:   p.StoredQuantityKg,
		DeliveryTimeFactor: p.DeliveryTimeFactor,
	}
	err := s.db.WithContext(ctx).Create(&m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, domain.ErrAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	created := m.toDomain()
	return &created, nil
}

func (s *ProductStore) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.DeliveryTimeFactor <= 0 {
		return nil, domain.ErrInvalidTimeFactor
	}
	var m productModel
	err := s.db.WithContext(ctx).Where("code = ?", p.Code).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	m.Description = p.Description
	m.Category = p.Category
	m.ContainerType = p.ContainerType
	m.DeliveryTimeFactor = p.DeliveryTimeFactor
	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	updated := m.toDomain()
	return &updated, nil
}

// AddStoredQuantity atomically increments the stored quantity, used when a
// weighing is registered.
func (s *ProductStore) AddStoredQuantity(ctx context.Context, code string, deltaKg float64) error {
	res := s.db.WithContext(ctx).
		Model(&productModel{}).
		Where("code = ?", code).
		UpdateColumn("stored_quantity_kg", gorm.Expr("stored_quantity_kg + ?", deltaKg))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DeleteAll clears the table. Used by the sample-data seeder only.
func (s *ProductStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&productModel{}).Error
}
