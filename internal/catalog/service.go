// Package catalog implements the product catalog operations on top of a
// repo.ProductRepository.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultPriceThreshold is the price above which ExpensiveProducts returns products.
const DefaultPriceThreshold = 400

type Service struct {
	products  repo.ProductRepository
	log       *zap.Logger
	validate  *validator.Validate
	threshold decimal.Decimal
}

type Option func(*Service)

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

func WithPriceThreshold(threshold int) Option {
	return func(s *Service) {
		s.threshold = decimal.NewFromInt(int64(threshold))
	}
}

func NewService(products repo.ProductRepository, opts ...Option) *Service {
	s := &Service{
		products:  products,
		log:       zap.NewNop(),
		validate:  newValidator(),
		threshold: decimal.NewFromInt(DefaultPriceThreshold),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListProducts returns every product. Masking the purchase cost is left to
// the caller's response shape.
func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch products: %w", err)
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, id int) (models.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repo.ErrProductNotFound) {
		return models.Product{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("could not fetch product %d: %w", id, err)
	}
	return p, nil
}

// CreateProduct validates and stores a new product. Any ID in the payload is
// ignored. A nil product with a nil error means the store kept nothing.
func (s *Service) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	p.ID = 0
	if err := s.validateProduct(p); err != nil {
		return nil, err
	}

	created, err := s.products.Save(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	if created != nil {
		s.log.Info("product created", zap.Int("id", created.ID), zap.String("name", created.Name))
	}
	return created, nil
}

// UpdateProduct replaces the stored product with the same ID. Unknown IDs are
// ignored.
func (s *Service) UpdateProduct(ctx context.Context, p models.Product) error {
	if p.ID <= 0 {
		return &ValidationError{Fields: []FieldError{{Field: "id", Description: "id is required"}}}
	}
	if err := s.validateAmounts(p); err != nil {
		return err
	}

	updated, err := s.products.Save(ctx, p)
	if err != nil {
		return fmt.Errorf("could not update product %d: %w", p.ID, err)
	}
	if updated == nil {
		s.log.Debug("update ignored, product does not exist", zap.Int("id", p.ID))
	}
	return nil
}

// DeleteProduct removes the product with the given ID, if any.
func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("could not delete product %d: %w", id, err)
	}
	return nil
}

// MarginReport lists every product with its margin as
// "<product>: <price - purchase cost>".
func (s *Service) MarginReport(ctx context.Context) ([]string, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch products: %w", err)
	}
	if err := checkPrices(products); err != nil {
		return nil, err
	}

	report := make([]string, len(products))
	for i, p := range products {
		report[i] = p.String() + ": " + p.Margin().String()
	}
	return report, nil
}

func (s *Service) ListSortedByName(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAllOrderByNameAsc(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch products: %w", err)
	}
	if err := checkPrices(products); err != nil {
		return nil, err
	}
	return products, nil
}

// ZeroPriceDemo sets the first product's price to 0 in memory and runs the
// price check, so it fails whenever the catalog is not empty.
func (s *Service) ZeroPriceDemo(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAllOrderByNameAsc(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch products: %w", err)
	}
	if len(products) > 0 {
		products[0].Price = decimal.Zero
	}
	if err := checkPrices(products); err != nil {
		return nil, err
	}
	return products, nil
}

// ExpensiveProducts returns the products priced above the configured
// threshold. requested is not used to filter.
func (s *Service) ExpensiveProducts(ctx context.Context, requested int) ([]models.Product, error) {
	s.log.Debug("price filter uses the configured threshold",
		zap.Int("requested", requested), zap.String("threshold", s.threshold.String()))

	products, err := s.products.FindByPriceGreaterThan(ctx, s.threshold)
	if err != nil {
		return nil, fmt.Errorf("could not fetch products: %w", err)
	}
	return products, nil
}

// Ping reports the health of the underlying store when it supports it.
func (s *Service) Ping(ctx context.Context) error {
	if p, ok := s.products.(repo.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
