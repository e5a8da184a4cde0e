package controllers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labelsight/labelsight/app/controllers"
	"github.com/labelsight/labelsight/app/models"
	"github.com/labelsight/labelsight/app/services"
	"github.com/labelsight/labelsight/pkg/rest"
	"github.com/labelsight/labelsight/pkg/testkit"
)

func TestProductListMapsFilterToCategory(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("GET", "/api/products", 200, testkit.Success(models.ProductPage{
		Products: []models.Product{
			{ProductCode: "P1", Category: models.CategoryBeverage},
			{ProductCode: "P2", Category: models.CategoryBeverage},
			{ProductCode: "P3", Category: models.CategorySnack},
		},
		Total: 120,
	}))
	client := rest.New("http://backend/api", rest.WithHTTPClient(mt.Client()))

	ctrl := controllers.NewProductListController(context.Background(),
		services.NewProductService(client),
		controllers.WithFilter(models.CategoryBeverage),
		controllers.WithKeyword("cola"))
	defer ctrl.Close()

	require.NoError(t, ctrl.Fetch(context.Background()))

	call, ok := mt.LastCall("GET", "/api/products")
	require.True(t, ok)
	assert.Equal(t, models.CategoryBeverage, call.Query["category"])
	assert.Equal(t, "cola", call.Query["keyword"])

	// Page-local tallies; Total() stays the server's global count.
	counts := ctrl.CategoryCounts()
	assert.Equal(t, 2, counts[models.CategoryBeverage])
	assert.Equal(t, 1, counts[models.CategorySnack])
	assert.Equal(t, 120, ctrl.Total())
}

func TestUserListStats(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("GET", "/api/users", 200, testkit.Success(models.UserPage{
		Users: []models.User{
			{Email: "a@x.com", Role: models.RoleAdmin},
			{Email: "b@x.com", Role: models.RoleEmployee},
			{Email: "c@x.com", Role: models.RoleEmployee},
		},
		Total: 3,
	}))
	client := rest.New("http://backend/api", rest.WithHTTPClient(mt.Client()))

	ctrl := controllers.NewUserListController(context.Background(), services.NewUserService(client))
	defer ctrl.Close()

	require.NoError(t, ctrl.Fetch(context.Background()))

	stats := ctrl.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Administrators)
	assert.Equal(t, 2, stats.Employees)
	assert.Equal(t, 3, stats.TotalFromAPI)
	assert.True(t, stats.ShowingAll)
}

func TestUserListDeletesByEmail(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("GET", "/api/users", 200, testkit.Success(models.UserPage{Total: 0}))
	mt.Stub("DELETE", "/api/users/email/b@x.com", 200, testkit.Success(nil))
	client := rest.New("http://backend/api", rest.WithHTTPClient(mt.Client()))

	ctrl := controllers.NewUserListController(context.Background(), services.NewUserService(client))
	defer ctrl.Close()

	require.NoError(t, ctrl.Fetch(context.Background()))
	require.NoError(t, ctrl.Delete(context.Background(), "b@x.com"))

	assert.Equal(t, 1, mt.CallCount("DELETE", "/api/users/email/b@x.com"))
	assert.Equal(t, 2, mt.CallCount("GET", "/api/users"), "delete refetches the list")
}
