package catalog

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// NotFoundError is returned when no product has the requested ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ID)
}

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError lists every invalid field of a product payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Description
	}
	return "invalid product: " + strings.Join(parts, "; ")
}

// ZeroPriceError is returned by read paths that refuse products priced at 0.
type ZeroPriceError struct {
	Product models.Product
}

func (e *ZeroPriceError) Error() string {
	return fmt.Sprintf("product %s has a price equal to 0", e.Product.Name)
}
