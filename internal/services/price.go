package services

import (
	"context"
	"fmt"

	"github.com/zedbuild/buildcalc/internal/models"
	"github.com/zedbuild/buildcalc/internal/prices"
	"github.com/zedbuild/buildcalc/internal/repositories/materialprices"
)

// PriceService maintains the local material price table. Prices start from a
// city baseline and can be adjusted per material afterwards.
type PriceService interface {
	// ApplyCity replaces the stored prices with the baseline for a city.
	ApplyCity(ctx context.Context, city string) error
	// Set overrides the price for a single material.
	Set(ctx context.Context, material string, price float64, unit string) error
	Get(ctx context.Context, material string) (*models.MaterialPrice, error)
	List(ctx context.Context) ([]models.MaterialPrice, error)
}

type priceService struct {
	repo materialprices.Repository
}

func NewPriceService(repo materialprices.Repository) PriceService {
	return &priceService{repo: repo}
}

func (s *priceService) ApplyCity(ctx context.Context, city string) error {
	cp, err := prices.ForCity(city)
	if err != nil {
		return err
	}
	for material, price := range cp.Materials() {
		if err := s.repo.Save(ctx, material, price, prices.MaterialUnit(material)); err != nil {
			return fmt.Errorf("failed to apply prices for %s: %w", city, err)
		}
	}
	return nil
}

func (s *priceService) Set(ctx context.Context, material string, price float64, unit string) error {
	return s.repo.Save(ctx, material, price, unit)
}

func (s *priceService) Get(ctx context.Context, material string) (*models.MaterialPrice, error) {
	return s.repo.Find(ctx, material)
}

func (s *priceService) List(ctx context.Context) ([]models.MaterialPrice, error) {
	return s.repo.FindAll(ctx)
}
