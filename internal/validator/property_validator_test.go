package validator_test

import (
	"testing"
	"time"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func newPropertyValidator() usecase.PropertyValidator {
	return validator.NewPropertyValidator(&fixedClock{t: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)})
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	ve, ok := usecase.AsValidationError(err)
	if !ok {
		t.Fatalf("want *usecase.ValidationError, got %v", err)
	}
	m := make(map[string]string, len(ve.Errors))
	for _, fe := range ve.Errors {
		m[fe.Field] = fe.Message
	}
	return m
}

func TestPropertyValidator_ChangePrice_TwoDecimalRule(t *testing.T) {
	v := newPropertyValidator()

	cases := []struct {
		name  string
		price decimal.Decimal
		ok    bool
	}{
		{"three decimals rejected", decimal.NewFromFloat(12.345), false},
		{"two decimals accepted", decimal.NewFromFloat(12.34), true},
		{"one decimal accepted", decimal.NewFromFloat(12.3), true},
		{"integer accepted", decimal.NewFromInt(12), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateChangePrice(usecase.ChangePriceInput{
				PropertyID: "prop-1",
				NewPrice:   tc.price,
			})
			if tc.ok {
				assert.NoError(t, err)
			} else {
				m := fieldMessages(t, err)
				assert.Equal(t, "newPrice must have up to 2 decimals", m["newPrice"])
			}
		})
	}
}

func TestPropertyValidator_ChangePrice_RequiresPositive(t *testing.T) {
	v := newPropertyValidator()

	err := v.ValidateChangePrice(usecase.ChangePriceInput{
		PropertyID: "prop-1",
		NewPrice:   decimal.Zero,
	})

	m := fieldMessages(t, err)
	assert.Equal(t, "newPrice must be greater than 0", m["newPrice"])
}

func TestPropertyValidator_Create_YearBounds(t *testing.T) {
	v := newPropertyValidator()

	base := usecase.CreatePropertyInput{
		Name:         "Casa",
		Address:      "Calle 1",
		Price:        decimal.NewFromInt(100),
		CodeInternal: "PRP-001",
		OwnerID:      "owner-1",
	}

	//作成時は1900〜来年（固定時計は2026年）
	cases := []struct {
		year int
		ok   bool
	}{
		{1899, false},
		{1900, true},
		{2027, true},
		{2028, false},
	}
	for _, tc := range cases {
		in := base
		in.Year = tc.year
		err := v.ValidateCreate(in)
		if tc.ok {
			assert.NoError(t, err, "year=%d", tc.year)
		} else {
			m := fieldMessages(t, err)
			assert.Equal(t, "year is out of range", m["year"], "year=%d", tc.year)
		}
	}
}

func TestPropertyValidator_Create_CollectsAllViolations(t *testing.T) {
	v := newPropertyValidator()

	err := v.ValidateCreate(usecase.CreatePropertyInput{
		Name:         "",
		Address:      "",
		Price:        decimal.Zero,
		CodeInternal: "",
		Year:         2020,
		OwnerID:      "",
	})

	ve, ok := usecase.AsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, ve.Errors, 5)
}

func TestPropertyValidator_Update_RequiresAtLeastOneField(t *testing.T) {
	v := newPropertyValidator()

	err := v.ValidateUpdate(usecase.UpdatePropertyInput{PropertyID: "prop-1"})

	m := fieldMessages(t, err)
	assert.Equal(t, "provide at least one field to update", m[""])
}

func TestPropertyValidator_Update_AllowsZeroPrice(t *testing.T) {
	v := newPropertyValidator()

	//更新では0を許す（作成は正の値のみ）
	price := decimal.Zero
	err := v.ValidateUpdate(usecase.UpdatePropertyInput{
		PropertyID: "prop-1",
		Price:      &price,
	})

	assert.NoError(t, err)
}

func TestPropertyValidator_Update_YearBounds(t *testing.T) {
	v := newPropertyValidator()

	for _, tc := range []struct {
		year int
		ok   bool
	}{
		{1799, false},
		{1800, true},
		{2100, true},
		{2101, false},
	} {
		year := tc.year
		err := v.ValidateUpdate(usecase.UpdatePropertyInput{
			PropertyID: "prop-1",
			Year:       &year,
		})
		if tc.ok {
			assert.NoError(t, err, "year=%d", tc.year)
		} else {
			assert.Error(t, err, "year=%d", tc.year)
		}
	}
}

func TestPropertyValidator_List_PagingBounds(t *testing.T) {
	v := newPropertyValidator()

	err := v.ValidateList(usecase.ListPropertiesInput{Page: 0, PageSize: 0})
	m := fieldMessages(t, err)
	assert.Equal(t, "page must be greater than 0", m["page"])
	assert.Equal(t, "pageSize must be between 1 and 200", m["pageSize"])

	assert.NoError(t, v.ValidateList(usecase.ListPropertiesInput{Page: 1, PageSize: 200}))
	assert.Error(t, v.ValidateList(usecase.ListPropertiesInput{Page: 1, PageSize: 201}))
}

func TestPropertyValidator_List_RangeConsistency(t *testing.T) {
	v := newPropertyValidator()

	minPrice := decimal.NewFromInt(500)
	maxPrice := decimal.NewFromInt(100)

	err := v.ValidateList(usecase.ListPropertiesInput{
		Page:     1,
		PageSize: 20,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})
	assert.Error(t, err)

	//片側だけの指定は整合チェックの対象外
	assert.NoError(t, v.ValidateList(usecase.ListPropertiesInput{
		Page:     1,
		PageSize: 20,
		MinPrice: &minPrice,
	}))
}
