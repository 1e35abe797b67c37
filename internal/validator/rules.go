package validator

import (
	"app/internal/usecase"

	"github.com/shopspring/decimal"
)

// 小数2桁に丸めた値が自分自身と一致するか（12.345はNG、12.34 / 12.3はOK）
func hasTwoDecimals(v decimal.Decimal) bool {
	return v.Equal(v.Round(2))
}

func fieldError(field string, message string) usecase.FieldError {
	return usecase.FieldError{Field: field, Message: message}
}

func asError(errs []usecase.FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	return &usecase.ValidationError{Errors: errs}
}
