package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labelsight/labelsight/pkg/validate"
)

type productInput struct {
	Code        string `json:"product_code" validate:"required,max=100"`
	Name        string `json:"name"         validate:"required,max=255"`
	Category    string `json:"category"     validate:"required,in=FOOD,BEVERAGE,SNACK,FROZEN,FRESH,OTHER"`
	Description string `json:"descriptions" validate:"nullable,max=2000"`
	Email       string `json:"email"        validate:"nullable,email"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Code:     "P1",
		Name:     "Widget",
		Category: "FOOD",
	})
	require.False(t, validate.HasErrors(errs), "unexpected errors: %v", errs)
}

func TestRequiredFieldsKeyedByJSONTag(t *testing.T) {
	errs := validate.Struct(productInput{})

	require.True(t, validate.HasErrors(errs))
	require.Contains(t, errs, "product_code")
	require.Contains(t, errs, "name")
	require.Contains(t, errs, "category")
	require.NotContains(t, errs, "descriptions") // nullable
}

func TestCategoryEnum(t *testing.T) {
	errs := validate.Struct(productInput{Code: "P1", Name: "Widget", Category: "HARDWARE"})
	require.Contains(t, errs, "category")

	for _, cat := range []string{"FOOD", "BEVERAGE", "SNACK", "FROZEN", "FRESH", "OTHER"} {
		errs := validate.Struct(productInput{Code: "P1", Name: "Widget", Category: cat})
		require.NotContains(t, errs, "category", "category %s should be valid", cat)
	}
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(productInput{Code: "P1", Name: "W", Category: "FOOD", Email: "not-an-email"})
	require.Contains(t, errs, "email")

	errs = validate.Struct(productInput{Code: "P1", Name: "W", Category: "FOOD", Email: "staff@example.com"})
	require.NotContains(t, errs, "email")
}

func TestMaxLength(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	errs := validate.Struct(productInput{Code: string(long), Name: "W", Category: "FOOD"})
	require.Contains(t, errs, "product_code")
}

func TestAsError(t *testing.T) {
	require.NoError(t, validate.AsError(nil))
	require.NoError(t, validate.AsError(map[string]string{}))

	err := validate.AsError(map[string]string{"name": "The name field is required."})
	require.Error(t, err)

	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "name")
}
