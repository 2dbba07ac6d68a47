package catalog

import (
	"go.uber.org/zap"

	"podarunok-backend/internal/models"
	"podarunok-backend/internal/store"
)

// Loader fetches products and their size/price variants. Read failures are
// logged and degrade to an empty result; callers never see them as errors.
type Loader struct {
	store  store.Store
	logger *zap.Logger
}

func NewLoader(st store.Store, logger *zap.Logger) *Loader {
	return &Loader{store: st, logger: logger}
}

// Categories returns the category rows ordered for display. The catalog
// response carries them so clients can group products by category_id.
func (l *Loader) Categories() []models.ProductCategory {
	var categories []models.ProductCategory
	err := l.store.Select("product_categories", store.Query{OrderBy: "sort_order"}, &categories)
	if err != nil {
		l.logger.Error("fetching product categories", zap.Error(err))
		return []models.ProductCategory{}
	}
	return categories
}

// Products returns active products ordered for display.
func (l *Loader) Products() []models.Product {
	var products []models.Product
	err := l.store.Select("products", store.Query{
		Filters: []store.Filter{{Column: "is_active", Value: "true"}},
		OrderBy: "sort_order",
	}, &products)
	if err != nil {
		l.logger.Error("fetching products", zap.Error(err))
		return []models.Product{}
	}
	return products
}

// ActiveProducts returns active products with their formats joined in
// memory by product reference. Either query failing yields an empty
// catalog, matching the single failure domain of one page load.
func (l *Loader) ActiveProducts() []models.ProductWithFormats {
	products := l.Products()
	if len(products) == 0 {
		return []models.ProductWithFormats{}
	}

	var formats []models.ProductFormat
	err := l.store.Select("product_formats", store.Query{OrderBy: "sort_order"}, &formats)
	if err != nil {
		l.logger.Error("fetching product formats", zap.Error(err))
		return []models.ProductWithFormats{}
	}

	joined := make([]models.ProductWithFormats, 0, len(products))
	for _, p := range products {
		pf := models.ProductWithFormats{Product: p, Formats: []models.ProductFormat{}}
		for _, f := range formats {
			if f.ProductID == p.ID {
				pf.Formats = append(pf.Formats, f)
			}
		}
		joined = append(joined, pf)
	}
	return joined
}

// Formats returns the format rows for one product, ordered for display.
func (l *Loader) Formats(productID string) []models.ProductFormat {
	var formats []models.ProductFormat
	err := l.store.Select("product_formats", store.Query{
		Filters: []store.Filter{{Column: "product_id", Value: productID}},
		OrderBy: "sort_order",
	}, &formats)
	if err != nil {
		l.logger.Error("fetching formats", zap.String("product_id", productID), zap.Error(err))
		return []models.ProductFormat{}
	}
	return formats
}
