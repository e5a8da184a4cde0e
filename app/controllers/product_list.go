package controllers

import (
	"context"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/app/services"
	"github.com/labelsight/labelsight/pkg/collection"
)

// ProductListController is the product screen's state: a paged product
// collection filtered by category and debounced keyword.
type ProductListController struct {
	*ListController[models.Product]
}

// NewProductListController wires the generic list controller to the product
// service. The filter value is a category ("" for all).
func NewProductListController(ctx context.Context, svc *services.ProductService, opts ...ListOption) *ProductListController {
	fetch := func(ctx context.Context, p FetchParams) ([]models.Product, int, error) {
		page, err := svc.List(ctx, services.ListProductsParams{
			Skip:     p.Skip,
			Limit:    p.Limit,
			Category: p.Filter,
			Keyword:  p.Keyword,
		})
		if err != nil {
			return nil, 0, err
		}
		return page.Products, page.Total, nil
	}

	return &ProductListController{
		ListController: NewListController(ctx, fetch, svc.Delete, opts...),
	}
}

// SetCategory commits a category filter ("" clears it) and refetches.
func (c *ProductListController) SetCategory(category string) error {
	return c.SetFilter(category)
}

// CategoryCounts tallies the loaded page per category. These are page-local
// numbers, not global totals — Total() carries the server's count.
func (c *ProductListController) CategoryCounts() map[string]int {
	return collection.CountBy(c.Items(), func(p models.Product) string { return p.Category })
}
