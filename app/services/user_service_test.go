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

func newUserService(mt *testkit.MockTransport) *services.UserService {
	client := rest.New("http://backend/api", rest.WithHTTPClient(mt.Client()))
	return services.NewUserService(client)
}

func TestMe(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("GET", "/api/me", 200, testkit.Success(models.User{
		Email: "alice@example.com",
		Role:  models.RoleAdmin,
	}))
	svc := newUserService(mt)

	user, err := svc.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsAdmin())
}

func TestCreateUserAddressedByEmail(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("POST", "/api/users/email", 200, testkit.Success(models.User{Email: "bob@example.com"}))
	svc := newUserService(mt)

	user, err := svc.Create(context.Background(), services.UserCreateInput{
		Email:        "bob@example.com",
		EmployeeCode: "E-7",
		Name:         "Bob",
		Role:         models.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", user.Email)

	call, ok := mt.LastCall("POST", "/api/users/email")
	require.True(t, ok)
	var sent map[string]interface{}
	require.NoError(t, call.BodyJSON(&sent))
	assert.Equal(t, "E-7", sent["employee_code"])
	assert.Equal(t, models.RoleEmployee, sent["role"])
}

func TestCreateUserRejectsBadEmail(t *testing.T) {
	mt := testkit.NewMockTransport()
	svc := newUserService(mt)

	_, err := svc.Create(context.Background(), services.UserCreateInput{
		Email:        "not-an-email",
		EmployeeCode: "E-7",
		Name:         "Bob",
		Role:         models.RoleEmployee,
	})
	require.Error(t, err)

	var vErr *validate.Error
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")
	assert.Empty(t, mt.Calls())
}

func TestUpdateAndDeleteUseEmailPath(t *testing.T) {
	mt := testkit.NewMockTransport()
	mt.Stub("PUT", "/api/users/email/bob@example.com", 200, testkit.Success(models.User{Email: "bob@example.com"}))
	mt.Stub("DELETE", "/api/users/email/bob@example.com", 200, testkit.Success(nil))
	svc := newUserService(mt)

	_, err := svc.Update(context.Background(), "bob@example.com", services.UserUpdateInput{
		Name: "Robert",
		Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), "bob@example.com"))

	assert.Equal(t, 1, mt.CallCount("PUT", "/api/users/email/bob@example.com"))
	assert.Equal(t, 1, mt.CallCount("DELETE", "/api/users/email/bob@example.com"))
}
