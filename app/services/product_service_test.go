package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/app/services"
	"github.com/labelsight/labelsight/pkg/rest"
	"github.com/labelsight/labelsight/pkg/testkit"
	"github.com/labelsight/labelsight/pkg/validate"
)

func newProductService(mt *testkit.MockTransport) *services.ProductService {
	client := rest.New("http://backend/api", rest.WithHTTPClient(mt.Client()))
	return services.NewProductService(client)
}

func validProductInput() services.ProductCreateInput {
	return services.ProductCreateInput{
		ProductCode:    "P1",
		Name:           "Cola 330ml",
		Category:       models.CategoryBeverage,
		Descriptions:   "Canned soft drink",
		AvatarURL:      "/uploads/products/p1-avatar.jpg",
		SampleImageURL: "/uploads/products/p1-sample.jpg",
	}
}

func TestListProducts(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("GET", "/api/products", 200, testkit.Success(models.ProductPage{
		Products: []models.Product{{ProductCode: "P1", Name: "Cola 330ml"}},
		Total:    37,
	}))
	svc := newProductService(mt)

	page, err := svc.List(context.Background(), services.ListProductsParams{
		Skip:     50,
		Limit:    50,
		Category: models.CategoryBeverage,
	})
	require.NoError(t, err)
	assert.Equal(t, 37, page.Total)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "P1", page.Products[0].ProductCode)

	call, _ := mt.LastCall("GET", "/api/products")
	assert.Equal(t, "50", call.Query["skip"])
	assert.Equal(t, "50", call.Query["limit"])
	assert.Equal(t, models.CategoryBeverage, call.Query["category"])
	_, has := call.Query["keyword"]
	assert.False(t, has)
}

func TestCreateProduct(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("POST", "/api/products", 200, testkit.Success(models.Product{ProductCode: "P1"}))
	svc := newProductService(mt)

	product, err := svc.Create(context.Background(), validProductInput())
	require.NoError(t, err)
	assert.Equal(t, "P1", product.ProductCode)

	require.Equal(t, 1, mt.CallCount("POST", "/api/products"))
	call, _ := mt.LastCall("POST", "/api/products")

	var sent map[string]interface{}
	require.NoError(t, call.BodyJSON(&sent))
	assert.Equal(t, "P1", sent["product_code"])
	assert.Equal(t, models.CategoryBeverage, sent["category"])
	assert.Equal(t, "/uploads/products/p1-sample.jpg", sent["sample_image_url"])
}

func TestCreateProductInvalidInputSkipsNetwork(t *testing.T) {
	mt := testkit.NewMockTransport()
	svc := newProductService(mt)

	in := validProductInput()
	in.ProductCode = ""
	in.Category = "CANDY"

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)

	var vErr *validate.Error
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "product_code")
	assert.Contains(t, vErr.Fields, "category")

	assert.Empty(t, mt.Calls(), "invalid input must not reach the wire")
}

func TestUpdateProductAllowsEmptyImages(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("PUT", "/api/products/P1", 200, testkit.Success(models.Product{ProductCode: "P1"}))
	svc := newProductService(mt)

	_, err := svc.Update(context.Background(), "P1", services.ProductUpdateInput{
		Name:     "Cola 330ml",
		Category: models.CategoryBeverage,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, mt.CallCount("PUT", "/api/products/P1"))
}

func TestDeleteProduct(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("DELETE", "/api/products/P1", 200, testkit.Success(nil))
	svc := newProductService(mt)

	require.NoError(t, svc.Delete(context.Background(), "P1"))
	assert.Equal(t, 1, mt.CallCount("DELETE", "/api/products/P1"))
}
