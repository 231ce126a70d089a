package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-biztime-backend/internal/domain"
)

// ListIndustries returns every industry ordered by code.
func ListIndustries(ctx context.Context, db *gorm.DB) ([]domain.Industry, error) {
	out := []domain.Industry{}
	err := db.WithContext(ctx).Order("code").Find(&out).Error
	return out, err
}

// CreateIndustry inserts an industry with no company association.
func CreateIndustry(ctx context.Context, db *gorm.DB, code, label string) (*domain.Industry, error) {
	ind := &domain.Industry{Code: code, Industry: label}
	if err := db.WithContext(ctx).Create(ind).Error; err != nil {
		return nil, err
	}
	return ind, nil
}

// AssociateIndustry points an industry at a company and returns the stored
// row. Returns ErrNotFound for an unknown industry code; an unknown company
// surfaces as the driver's foreign key error.
func AssociateIndustry(ctx context.Context, db *gorm.DB, code, compCode string) (*domain.Industry, error) {
	res := db.WithContext(ctx).
		Model(&domain.Industry{}).
		Where("code = ?", code).
		Update("comp_code", compCode)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var ind domain.Industry
	if err := db.WithContext(ctx).Where("code = ?", code).First(&ind).Error; err != nil {
		return nil, err
	}
	return &ind, nil
}
