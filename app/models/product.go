package models

// Product categories, as the backend enumerates them.
const (
	CategoryFood     = "FOOD"
	CategoryBeverage = "BEVERAGE"
	CategorySnack    = "SNACK"
	CategoryFrozen   = "FROZEN"
	CategoryFresh    = "FRESH"
	CategoryOther    = "OTHER"
)

// Categories lists every valid product category, in display order.
var Categories = []string{
	CategoryFood, CategoryBeverage, CategorySnack,
	CategoryFrozen, CategoryFresh, CategoryOther,
}

// ImageRef points at a stored image: the backend path plus a browsable URL.
type ImageRef struct {
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
}

// Product is one label-inspected product. ProductCode is assigned by a human
// and immutable after creation.
type Product struct {
	ID           int      `json:"id"`
	ProductCode  string   `json:"product_code"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Descriptions string   `json:"descriptions"`
	Avatar       ImageRef `json:"avatar"`
	SampleImage  ImageRef `json:"sample_image"`
	CreatedAt    string   `json:"created_at"`
}

// ProductPage is the paginated /products response payload.
type ProductPage struct {
	Products   []Product `json:"products"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
}
