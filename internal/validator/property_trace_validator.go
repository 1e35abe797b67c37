package validator

import (
	"strings"

	"app/internal/usecase"
)

type propertyTraceValidator struct{}

// Usecaseは interface を依存注入
func NewPropertyTraceValidator() usecase.PropertyTraceValidator {
	return &propertyTraceValidator{}
}

// 売買履歴追記の入力を検証。valueとtaxは別メッセージで区別する。
func (v *propertyTraceValidator) ValidateAdd(in usecase.AddPropertyTraceInput) error {
	var errs []usecase.FieldError

	if strings.TrimSpace(in.PropertyID) == "" {
		errs = append(errs, fieldError("idProperty", "idProperty is required"))
	}

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, fieldError("name", "name is required"))
	} else if len(in.Name) > 150 {
		errs = append(errs, fieldError("name", "name must be 150 characters or fewer"))
	}

	if in.Value.IsNegative() {
		errs = append(errs, fieldError("value", "value must be greater than or equal to 0"))
	} else if !hasTwoDecimals(in.Value) {
		errs = append(errs, fieldError("value", "value must have up to 2 decimals"))
	}

	if in.Tax.IsNegative() {
		errs = append(errs, fieldError("tax", "tax must be greater than or equal to 0"))
	} else if !hasTwoDecimals(in.Tax) {
		errs = append(errs, fieldError("tax", "tax must have up to 2 decimals"))
	}

	return asError(errs)
}
