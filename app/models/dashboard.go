package models

// DashboardMetrics are the server-computed aggregate counts for the
// requested date range and filters.
type DashboardMetrics struct {
	TotalProducts    int `json:"total_products"`
	TotalInspections int `json:"total_inspections"`
	TotalPassed      int `json:"total_passed"`
	TotalFailed      int `json:"total_failed"`
}

// FailedProduct is one entry of the server-ranked failure list.
type FailedProduct struct {
	ProductCode string `json:"product_code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	FailedCount int    `json:"failed_count"`
}

// DashboardOverview is the /dashboard/overview response payload.
type DashboardOverview struct {
	User              User             `json:"user"`
	Metrics           DashboardMetrics `json:"metrics"`
	TopFailedProducts []FailedProduct  `json:"top_failed_products"`
}
