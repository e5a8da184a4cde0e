// Package services wraps the backend REST endpoints, one service per
// resource. Create and update inputs are validated here, before any network
// call is issued — a validation failure returns a *validate.Error carrying
// the field-keyed messages and the wire is never touched.
package services

import (
	"context"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/pkg/rest"
	"github.com/labelsight/labelsight/pkg/validate"
)

// ListProductsParams are the /products filters. Category and Keyword are
// omitted from the query when empty.
type ListProductsParams struct {
	Skip     int
	Limit    int
	Category string
	Keyword  string
}

// ProductCreateInput is the POST /products payload. Both image paths are
// required on create; the form uploads the files first and submits the
// returned paths.
type ProductCreateInput struct {
	ProductCode    string `json:"product_code" validate:"required,max=100"`
	Name           string `json:"name"         validate:"required,max=255"`
	Category       string `json:"category"     validate:"required,in=FOOD,BEVERAGE,SNACK,FROZEN,FRESH,OTHER"`
	Descriptions   string `json:"descriptions" validate:"nullable,max=2000"`
	AvatarURL      string `json:"avatar_url"       validate:"required"`
	SampleImageURL string `json:"sample_image_url" validate:"required"`
}

// ProductUpdateInput is the PUT /products/{code} payload. Images are
// optional here: an empty value keeps the stored one.
type ProductUpdateInput struct {
	Name           string `json:"name"         validate:"required,max=255"`
	Category       string `json:"category"     validate:"required,in=FOOD,BEVERAGE,SNACK,FROZEN,FRESH,OTHER"`
	Descriptions   string `json:"descriptions" validate:"nullable,max=2000"`
	AvatarURL      string `json:"avatar_url"       validate:"nullable"`
	SampleImageURL string `json:"sample_image_url" validate:"nullable"`
}

// ProductService calls the /products endpoints.
type ProductService struct {
	client *rest.Client
}

func NewProductService(client *rest.Client) *ProductService {
	return &ProductService{client: client}
}

// List fetches one page of products.
func (s *ProductService) List(ctx context.Context, p ListProductsParams) (*models.ProductPage, error) {
	var page models.ProductPage
	err := s.client.Get("/products").
		QueryInt("skip", p.Skip).
		QueryInt("limit", p.Limit).
		Query("category", p.Category).
		Query("keyword", p.Keyword).
		Result(ctx, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single product by its code.
func (s *ProductService) Get(ctx context.Context, code string) (*models.Product, error) {
	var product models.Product
	if err := s.client.Get("/products/" + code).Result(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Create validates in and submits it. Exactly one POST is issued on valid
// input; invalid input produces zero network calls.
func (s *ProductService) Create(ctx context.Context, in ProductCreateInput) (*models.Product, error) {
	if err := validate.AsError(validate.Struct(in)); err != nil {
		return nil, err
	}

	var product models.Product
	if err := s.client.Post("/products").Body(in).Result(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces the mutable fields of the product addressed by code.
func (s *ProductService) Update(ctx context.Context, code string, in ProductUpdateInput) (*models.Product, error) {
	if err := validate.AsError(validate.Struct(in)); err != nil {
		return nil, err
	}

	var product models.Product
	if err := s.client.Put("/products/" + code).Body(in).Result(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product addressed by code.
func (s *ProductService) Delete(ctx context.Context, code string) error {
	return s.client.Delete("/products/" + code).Result(ctx, nil)
}
