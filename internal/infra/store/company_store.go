package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/agrocoop-dev/delivery-scheduling/internal/domain"
)

type representativeModel struct {
	DNI      string `gorm:"size:16"`
	FullName string `gorm:"size:256"`
	Phone    string `gorm:"size:32"`
	Email    string `gorm:"size:256"`
}

type companyModel struct {
	ID             uint   `gorm:"primaryKey"`
	CIF            string `gorm:"uniqueIndex;size:16"`
	LegalName      string `gorm:"size:256"`
	PostalAddress  string `gorm:"size:256"`
	Town           string `gorm:"size:128"`
	Phone          string `gorm:"size:32"`
	Representative representativeModel `gorm:"embedded;embeddedPrefix:rep_"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (companyModel) TableName() string { return "companies" }

func (m companyModel) toDomain() domain.Company {
	return domain.Company{
		CIF:           m.CIF,
		LegalName:     m.LegalName,
		PostalAddress: m.PostalAddress,
		Town:          m.Town,
		Phone:         m.Phone,
		Representative: domain.Representative{
			DNI:      m.Representative.DNI,
			FullName: m.Representative.FullName,
			Phone:    m.Representative.Phone,
			Email:    m.Representative.Email,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type CompanyStore struct {
	db *gorm.DB
}

func NewCompanyStore(db *gorm.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

func (s *CompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	var models []companyModel
	if err := s.db.WithContext(ctx).Order("cif").Find(&models).Error; err != nil {
		return nil, err
	}
	companies := make([]domain.Company, 0, len(models))
	for _, m := range models {
		companies = append(companies, m.toDomain())
	}
	return companies, nil
}

func (s *CompanyStore) GetByCIF(ctx context.Context, cif string) (*domain.Company, error) {
	var m companyModel
	err := s.db.WithContext(ctx).Where("cif = ?", cif).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	c := m.toDomain()
	return &c, nil
}

func (s *CompanyStore) Create(ctx context.Context, c domain.Company) (*domain.Company, error) {
	m := companyModel{
		CIF:           c.CIF,
		LegalName:     c.LegalName,
		PostalAddress: c.PostalAddress,
		Town:          c.Town,
		Phone:         c.Phone,
		Representative: representativeModel{
			DNI:      c.Representative.DNI,
			FullName: c.Representative.FullName,
			Phone:    c.Representative.Phone,
			Email:    c.Representative.Email,
		},
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

// DeleteAll clears the table. Used by the sample-data seeder only.
func (s *CompanyStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&companyModel{}).Error
}
