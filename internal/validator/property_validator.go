package validator

import (
	"strings"

	"app/internal/usecase"
)

type propertyValidator struct {
	clock usecase.Clock
}

// Usecaseは interface を依存注入
func NewPropertyValidator(clock usecase.Clock) usecase.PropertyValidator {
	return &propertyValidator{clock: clock}
}

// 物件作成の入力を検証
func (v *propertyValidator) ValidateCreate(in usecase.CreatePropertyInput) error {
	var errs []usecase.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, fieldError("name", "name is required"))
	} else if len(in.Name) > 150 {
		errs = append(errs, fieldError("name", "name must be 150 characters or fewer"))
	}

	if strings.TrimSpace(in.Address) == "" {
		errs = append(errs, fieldError("address", "address is required"))
	} else if len(in.Address) > 150 {
		errs = append(errs, fieldError("address", "address must be 150 characters or fewer"))
	}

	if !in.Price.IsPositive() {
		errs = append(errs, fieldError("price", "price must be greater than 0"))
	} else if !hasTwoDecimals(in.Price) {
		errs = append(errs, fieldError("price", "price must have up to 2 decimals"))
	}

	if strings.TrimSpace(in.CodeInternal) == "" {
		errs = append(errs, fieldError("codeInternal", "codeInternal is required"))
	} else if len(in.CodeInternal) > 50 {
		errs = append(errs, fieldError("codeInternal", "codeInternal must be 50 characters or fewer"))
	}

	//作成時は1900〜来年まで
	maxYear := v.clock.Now().Year() + 1
	if in.Year < 1900 || in.Year > maxYear {
		errs = append(errs, fieldError("year", "year is out of range"))
	}

	if strings.TrimSpace(in.OwnerID) == "" {
		errs = append(errs, fieldError("idOwner", "idOwner is required"))
	}

	return asError(errs)
}

// 部分更新の入力を検証。最低1フィールドは必須。
func (v *propertyValidator) ValidateUpdate(in usecase.UpdatePropertyInput) error {
	var errs []usecase.FieldError

	if strings.TrimSpace(in.PropertyID) == "" {
		errs = append(errs, fieldError("idProperty", "idProperty is required"))
	}

	if in.Name == nil && in.Address == nil && in.Price == nil &&
		in.CodeInternal == nil && in.Year == nil && in.OwnerID == nil {
		errs = append(errs, fieldError("", "provide at least one field to update"))
		return asError(errs)
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			errs = append(errs, fieldError("name", "name must not be empty"))
		} else if len(*in.Name) > 200 {
			errs = append(errs, fieldError("name", "name must be 200 characters or fewer"))
		}
	}

	if in.Address != nil {
		if strings.TrimSpace(*in.Address) == "" {
			errs = append(errs, fieldError("address", "address must not be empty"))
		} else if len(*in.Address) > 300 {
			errs = append(errs, fieldError("address", "address must be 300 characters or fewer"))
		}
	}

	if in.CodeInternal != nil {
		if strings.TrimSpace(*in.CodeInternal) == "" {
			errs = append(errs, fieldError("codeInternal", "codeInternal must not be empty"))
		} else if len(*in.CodeInternal) > 50 {
			errs = append(errs, fieldError("codeInternal", "codeInternal must be 50 characters or fewer"))
		}
	}

	if in.Price != nil {
		if in.Price.IsNegative() {
			errs = append(errs, fieldError("price", "price must be greater than or equal to 0"))
		} else if !hasTwoDecimals(*in.Price) {
			errs = append(errs, fieldError("price", "price must have up to 2 decimals"))
		}
	}

	//更新時は1800〜2100
	if in.Year != nil && (*in.Year < 1800 || *in.Year > 2100) {
		errs = append(errs, fieldError("year", "year is out of range"))
	}

	if in.OwnerID != nil && strings.TrimSpace(*in.OwnerID) == "" {
		errs = append(errs, fieldError("idOwner", "idOwner must not be empty"))
	}

	return asError(errs)
}

// 価格変更の入力を検証
func (v *propertyValidator) ValidateChangePrice(in usecase.ChangePriceInput) error {
	var errs []usecase.FieldError

	if strings.TrimSpace(in.PropertyID) == "" {
		errs = append(errs, fieldError("idProperty", "idProperty is required"))
	}

	if !in.NewPrice.IsPositive() {
		errs = append(errs, fieldError("newPrice", "newPrice must be greater than 0"))
	} else if !hasTwoDecimals(in.NewPrice) {
		errs = append(errs, fieldError("newPrice", "newPrice must have up to 2 decimals"))
	}

	return asError(errs)
}

// 一覧の入力を検証（ページ・範囲の整合）
func (v *propertyValidator) ValidateList(in usecase.ListPropertiesInput) error {
	var errs []usecase.FieldError

	if in.Page < 1 {
		errs = append(errs, fieldError("page", "page must be greater than 0"))
	}

	if in.PageSize < 1 || in.PageSize > 200 {
		errs = append(errs, fieldError("pageSize", "pageSize must be between 1 and 200"))
	}

	//両端が指定されたときだけ下限<=上限を確認する
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		errs = append(errs, fieldError("minPrice", "minPrice must be less than or equal to maxPrice"))
	}

	if in.MinYear != nil && in.MaxYear != nil && *in.MinYear > *in.MaxYear {
		errs = append(errs, fieldError("minYear", "minYear must be less than or equal to maxYear"))
	}

	return asError(errs)
}
