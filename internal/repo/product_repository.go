package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data operations.
//
// Save inserts the product when its ID is zero and replaces the stored record
// otherwise. Replacing an unknown ID stores nothing and returns a nil product.
// Delete of an unknown ID is a no-op.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int) (models.Product, error)
	Save(ctx context.Context, product models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int) error
	FindAllOrderByNameAsc(ctx context.Context) ([]models.Product, error)
	FindByPriceGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]models.Product, error)
}

// Pinger is implemented by backends that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}
