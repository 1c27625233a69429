package branding

import (
	"errors"

	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/domain"
)

var (
	ErrBrandNotFound = errors.New("brand not found")
	ErrNotOwner      = errors.New("brand does not belong to the requesting user")
	ErrMissingName   = errors.New("brand name is required")
)

type Brander interface {
	CreateBrand(ownerID int, brand *domain.Brand) (*domain.Brand, error)
	GetBrand(ownerID int, brandID string) (*domain.Brand, error)
	ListBrands(ownerID int) ([]*domain.Brand, error)
	UpdateBrand(ownerID int, req *domain.UpdateBrandRequest) (*domain.Brand, error)
	DeleteBrand(ownerID int, brandID string) error
}

type Service struct {
	brandRepo repository.BrandRepository
}

func NewService(brandRepo repository.BrandRepository) Brander {
	return &Service{
		brandRepo: brandRepo,
	}
}

func (s *Service) CreateBrand(ownerID int, brand *domain.Brand) (*domain.Brand, error) {
	if brand.Name == "" {
		return nil, ErrMissingName
	}

	brand.OwnerID = ownerID
	return s.brandRepo.CreateBrand(brand)
}

// GetBrand loads the brand and enforces that it belongs to the caller.
// Every brand-scoped operation goes through this check.
func (s *Service) GetBrand(ownerID int, brandID string) (*domain.Brand, error) {
	brand, err := s.brandRepo.GetBrandByID(brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil || brand.Deleted {
		return nil, ErrBrandNotFound
	}
	if brand.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	return brand, nil
}

func (s *Service) ListBrands(ownerID int) ([]*domain.Brand, error) {
	return s.brandRepo.ListBrandsByOwner(ownerID)
}

func (s *Service) UpdateBrand(ownerID int, req *domain.UpdateBrandRequest) (*domain.Brand, error) {
	brand, err := s.GetBrand(ownerID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrMissingName
		}
		brand.Name = *req.Name
	}

	if req.Description != nil {
		brand.Description = *req.Description
	}

	if req.Industry != nil {
		brand.Industry = *req.Industry
	}

	if req.ToneOfVoice != nil {
		brand.ToneOfVoice = *req.ToneOfVoice
	}

	if req.TargetAudience != nil {
		brand.TargetAudience = *req.TargetAudience
	}

	if req.Keywords != nil {
		brand.Keywords = *req.Keywords
	}

	if err := s.brandRepo.UpdateBrand(brand); err != nil {
		return nil, err
	}

	return brand, nil
}

func (s *Service) DeleteBrand(ownerID int, brandID string) error {
	if _, err := s.GetBrand(ownerID, brandID); err != nil {
		return err
	}

	return s.brandRepo.DeleteBrand(brandID)
}
