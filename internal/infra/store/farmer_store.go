package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

type farmerModel struct {
	ID        uint   `gorm:"primaryKey"`
	MemberID  string `gorm:"uniqueIndex;size:32"`
	DNI       string `gorm:"uniqueIndex;size:16"`
	FirstName string `gorm:"size:128"`
	LastName  string `gorm:"size:128"`
	Phone     string `gorm:"size:32"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (farmerModel) TableName() string { return "farmers" }

func (m farmerModel) toDomain() domain.Farmer {
	return domain.Farmer{
		MemberID:  m.MemberID,
		DNI:       m.DNI,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type FarmerStore struct {
	db *gorm.DB
}

func NewFarmerStore(db *gorm.DB) *FarmerStore {
	return &FarmerStore{db: db}
}

func (s *FarmerStore) List(ctx context.Context) ([]domain.Farmer, error) {
	var models []farmerModel
	if err := s.db.WithContext(ctx).Order("member_id").Find(&models).Error; err != nil {
		return nil, err
	}
	farmers := make([]domain.Farmer, 0, len(models))
	for _, m := range models {
		farmers = append(farmers, m.toDomain())
	}
	return farmers, nil
}

func (s *FarmerStore) GetByMemberID(ctx context.Context, memberID string) (*domain.Farmer, error) {
	var m farmerModel
	err := s.db.WithContext(ctx).Where("member_id = ?", memberID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrFarmerNotFound
	}
	if err != nil {
		return nil, err
	}
	f := m.toDomain()
	return &f, nil
}

func (s *FarmerStore) Create(ctx context.Context, f domain.Farmer) (*domain.Farmer, error) {
	m := farmerModel{
		MemberID:  f.MemberID,
		DNI:       f.DNI,
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Phone:     f.Phone,
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

func (s *FarmerStore) Update(ctx context.Context, f domain.Farmer) (*domain.Farmer, error) {
	var m farmerModel
	err := s.db.WithContext(ctx).Where("member_id = ?", f.MemberID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrFarmerNotFound
	}
	if err != nil {
		return nil, err
	}

	m.DNI = f.DNI
	m.FirstName = f.FirstName
	m.LastName = f.LastName
	m.Phone = f.Phone
	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	updated := m.toDomain()
	return &updated, nil
}

func (s *FarmerStore) Delete(ctx context.Context, memberID string) error {
	res := s.db.WithContext(ctx).Where("member_id = ?", memberID).Delete(&farmerModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrFarmerNotFound
	}
	return nil
}

// DeleteAll clears the table. Used by the sample-data seeder only.
func (s *FarmerStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&farmerModel{}).Error
}
