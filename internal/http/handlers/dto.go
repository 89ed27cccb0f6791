package handlers

import (
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Id           int             `json:"id,omitempty"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price" swaggertype:"number"`
	PurchaseCost decimal.Decimal `json:"purchase_cost" swaggertype:"number"`
}

func (req ProductRequest) toModel() models.Product {
	return models.Product{
		ID:           req.Id,
		Name:         req.Name,
		Price:        req.Price,
		PurchaseCost: req.PurchaseCost,
	}
}

// ProductListView is the list shape: it never carries the purchase cost.
type ProductListView struct {
	Id    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price" swaggertype:"number"`
}

type ProductDetailView struct {
	Id           int             `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price" swaggertype:"number"`
	PurchaseCost decimal.Decimal `json:"purchase_cost" swaggertype:"number"`
}

type ErrorResponse struct {
	Error  string               `json:"error"`
	Fields []catalog.FieldError `json:"fields,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func toListViews(products []models.Product) []ProductListView {
	views := make([]ProductListView, len(products))
	for i, p := range products {
		views[i] = ProductListView{Id: p.ID, Name: p.Name, Price: p.Price}
	}
	return views
}

func toDetailView(p models.Product) ProductDetailView {
	return ProductDetailView{Id: p.ID, Name: p.Name, Price: p.Price, PurchaseCost: p.PurchaseCost}
}

func toDetailViews(products []models.Product) []ProductDetailView {
	views := make([]ProductDetailView, len(products))
	for i, p := range products {
		views[i] = toDetailView(p)
	}
	return views
}
