package services

import (
	"context"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/pkg/rest"
)

// DashboardParams scope the overview to a date range plus optional filters.
// Dates are YYYY-MM-DD. All five parameters are always sent; the backend
// treats empty strings as "no filter".
type DashboardParams struct {
	StartDate      string
	EndDate        string
	ProductCode    string
	Keyword        string
	InspectorEmail string
}

// DashboardService calls /dashboard/overview.
type DashboardService struct {
	client *rest.Client
}

func NewDashboardService(client *rest.Client) *DashboardService {
	return &DashboardService{client: client}
}

// Overview fetches the server-computed aggregate metrics and ranked failure
// list for the given range and filters.
func (s *DashboardService) Overview(ctx context.Context, p DashboardParams) (*models.DashboardOverview, error) {
	var overview models.DashboardOverview
	err := s.client.Get("/dashboard/overview").
		QueryAlways("start_date", p.StartDate).
		QueryAlways("end_date", p.EndDate).
		QueryAlways("product_code", p.ProductCode).
		QueryAlways("keyword", p.Keyword).
		QueryAlways("inspector_email", p.InspectorEmail).
		Result(ctx, &overview)
	if err != nil {
		return nil, err
	}
	return &overview, nil
}
