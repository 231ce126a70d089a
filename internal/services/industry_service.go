package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-biztime-backend/internal/domain"
	"github.com/tbourn/go-biztime-backend/internal/repo"
)

// IndustryService manages industries and their company association.
type IndustryService struct {
	DB *gorm.DB
}

// List returns all industries.
func (s *IndustryService) List(ctx context.Context) ([]domain.Industry, error) {
	return repo.ListIndustries(ctx, s.DB)
}

// Create inserts an unassociated industry.
func (s *IndustryService) Create(ctx context.Context, code, label string) (*domain.Industry, error) {
	return repo.CreateIndustry(ctx, s.DB, code, label)
}

// Associate links the industry to company and returns the updated row.
func (s *IndustryService) Associate(ctx context.Context, code, company string) (*domain.Industry, error) {
	ind, err := repo.AssociateIndustry(ctx, s.DB, code, company)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrIndustryNotFound(code)
	}
	return ind, err
}
