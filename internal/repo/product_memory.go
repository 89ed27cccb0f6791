package repo

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// FindAll retrieves all products ordered by ID.
func (r *InMemoryProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products), nil
}

// FindByID retrieves a product by its ID.
func (r *InMemoryProductRepository) FindByID(_ context.Context, id int) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Save inserts or replaces a product.
func (r *InMemoryProductRepository) Save(_ context.Context, product models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
		r.products = append(r.products, product)
		return &product, nil
	}

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return &product, nil
		}
	}
	return nil, nil
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = slices.DeleteFunc(r.products, func(p models.Product) bool {
		return p.ID == id
	})
	return nil
}

// FindAllOrderByNameAsc retrieves all products sorted by name.
func (r *InMemoryProductRepository) FindAllOrderByNameAsc(ctx context.Context) ([]models.Product, error) {
	products, _ := r.FindAll(ctx)
	sortByName(products)
	return products, nil
}

// FindByPriceGreaterThan retrieves the products priced above threshold.
func (r *InMemoryProductRepository) FindByPriceGreaterThan(_ context.Context, threshold decimal.Decimal) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return filterPriceAbove(r.products, threshold), nil
}

func sortByName(products []models.Product) {
	slices.SortStableFunc(products, func(a, b models.Product) int {
		return strings.Compare(a.Name, b.Name)
	})
}

func filterPriceAbove(products []models.Product, threshold decimal.Decimal) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		if p.Price.GreaterThan(threshold) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
