package services

import (
	"context"
	"io"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/pkg/rest"
)

// InspectionService calls the /inspections endpoints. Inspection records are
// created only by the AI upload endpoint; everything else is read-only
// history.
type InspectionService struct {
	client *rest.Client
}

func NewInspectionService(client *rest.Client) *InspectionService {
	return &InspectionService{client: client}
}

// List fetches the full inspection history.
func (s *InspectionService) List(ctx context.Context) (*models.InspectionPage, error) {
	var page models.InspectionPage
	if err := s.client.Get("/inspections").Result(ctx, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListByProduct fetches the inspection history of one product.
func (s *InspectionService) ListByProduct(ctx context.Context, productCode string) (*models.InspectionPage, error) {
	var page models.InspectionPage
	if err := s.client.Get("/inspections/product/" + productCode).Result(ctx, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches one inspection by its code.
func (s *InspectionService) Get(ctx context.Context, code string) (*models.Inspection, error) {
	var inspection models.Inspection
	if err := s.client.Get("/inspections/code/" + code).Result(ctx, &inspection); err != nil {
		return nil, err
	}
	return &inspection, nil
}

// UploadFile is one photo to submit for AI comparison.
type UploadFile struct {
	Name   string
	Reader io.Reader
}

// Upload submits label photos for AI comparison against the product's
// reference image. The backend evaluates each file and creates one
// inspection record per file.
func (s *InspectionService) Upload(ctx context.Context, productCode string, files []UploadFile) (*models.InspectionUploadReport, error) {
	req := s.client.Post("/inspections/upload-multiple").
		Field("product_code", productCode).
		Field("status", "PENDING")
	for _, f := range files {
		req = req.File("file", f.Name, f.Reader)
	}

	var report models.InspectionUploadReport
	if err := req.Result(ctx, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
