package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/product-catalog/internal/catalog"
	"go.uber.org/zap"
)

type ProductHandlers struct {
	svc *catalog.Service
	log *zap.Logger
}

func NewProductHandlers(svc *catalog.Service, log *zap.Logger) *ProductHandlers {
	return &ProductHandlers{svc: svc, log: log}
}

// GetProductsHandler godoc
// @Summary List all products
// @Description Purchase costs are not part of this listing.
// @Tags products
// @Produce json
// @Success 200 {array} ProductListView
// @Failure 500 {object} ErrorResponse
// @Router /Produits [get]
func (h *ProductHandlers) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.writeError(w, r, err, "could not fetch products")
		return
	}
	h.respond(w, http.StatusOK, toListViews(products))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductDetailView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /Produits/{id} [get]
func (h *ProductHandlers) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, http.StatusBadRequest, ErrorResponse{Error: "invalid product ID"})
		return
	}

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "could not fetch product")
		return
	}
	h.respond(w, http.StatusOK, toDetailView(product))
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Answers 201 with a Location header, or 204 when nothing was stored.
// @Tags products
// @Accept json
// @Param product body ProductRequest true "Product to add"
// @Success 201 "Created"
// @Success 204 "Nothing stored"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /Produits [post]
func (h *ProductHandlers) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		h.respond(w, http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		return
	}

	created, err := h.svc.CreateProduct(r.Context(), req.toModel())
	if err != nil {
		h.writeError(w, r, err, "could not create product")
		return
	}
	if created == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Location", r.URL.Path+"/"+strconv.Itoa(created.ID))
	w.WriteHeader(http.StatusCreated)
}

// UpdateProductHandler godoc
// @Summary Replace a product
// @Description The payload must carry the product ID. Unknown IDs are ignored.
// @Tags products
// @Accept json
// @Param product body ProductRequest true "Updated product"
// @Success 200 "Updated"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /Produits [put]
func (h *ProductHandlers) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		h.respond(w, http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
		return
	}

	if err := h.svc.UpdateProduct(r.Context(), req.toModel()); err != nil {
		h.writeError(w, r, err, "could not update product")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Unknown IDs are ignored.
// @Tags products
// @Param id path int true "Product ID"
// @Success 200 "Deleted"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /Produits/{id} [delete]
func (h *ProductHandlers) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.respond(w, http.StatusBadRequest, ErrorResponse{Error: "invalid product ID"})
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		h.writeError(w, r, err, "could not delete product")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// MarginReportHandler godoc
// @Summary Margin of every product
// @Tags admin
// @Produce json
// @Success 200 {array} string
// @Failure 422 {object} ErrorResponse "A product has a price equal to 0"
// @Failure 500 {object} ErrorResponse
// @Router /AdminProduits [get]
func (h *ProductHandlers) MarginReportHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.MarginReport(r.Context())
	if err != nil {
		h.writeError(w, r, err, "could not compute margins")
		return
	}
	h.respond(w, http.StatusOK, report)
}

// SortedByNameHandler godoc
// @Summary List products in alphabetical order
// @Tags products
// @Produce json
// @Success 200 {array} ProductDetailView
// @Failure 422 {object} ErrorResponse "A product has a price equal to 0"
// @Failure 500 {object} ErrorResponse
// @Router /GetProductByName [get]
func (h *ProductHandlers) SortedByNameHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListSortedByName(r.Context())
	if err != nil {
		h.writeError(w, r, err, "could not fetch products")
		return
	}
	h.respond(w, http.StatusOK, toDetailViews(products))
}

// ZeroPriceDemoHandler godoc
// @Summary Trigger the zero price error
// @Description Sets the first product's price to 0 for this request only, then checks prices.
// @Tags products
// @Produce json
// @Success 200 {array} ProductDetailView "Only when the catalog is empty"
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ErreurTest [get]
func (h *ProductHandlers) ZeroPriceDemoHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ZeroPriceDemo(r.Context())
	if err != nil {
		h.writeError(w, r, err, "could not fetch products")
		return
	}
	h.respond(w, http.StatusOK, toDetailViews(products))
}

// ExpensiveProductsHandler godoc
// @Summary Products above the configured price threshold
// @Description The path price is accepted but the configured threshold is used.
// @Tags test
// @Produce json
// @Param prix path int true "Requested price (not used)"
// @Success 200 {array} ProductDetailView
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /test/produits/{prix} [get]
func (h *ProductHandlers) ExpensiveProductsHandler(w http.ResponseWriter, r *http.Request) {
	prix, err := strconv.Atoi(chi.URLParam(r, "prix"))
	if err != nil {
		h.respond(w, http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
		return
	}

	products, err := h.svc.ExpensiveProducts(r.Context(), prix)
	if err != nil {
		h.writeError(w, r, err, "could not fetch products")
		return
	}
	h.respond(w, http.StatusOK, toDetailViews(products))
}

// HealthHandler godoc
// @Summary Store health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *ProductHandlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		h.log.Warn("store ping failed", zap.Error(err))
		h.respond(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	h.respond(w, http.StatusOK, HealthResponse{Status: "ok"})
}
