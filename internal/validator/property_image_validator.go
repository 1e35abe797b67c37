package validator

import (
	"strings"

	"app/internal/usecase"
)

type propertyImageValidator struct{}

// Usecaseは interface を依存注入
func NewPropertyImageValidator() usecase.PropertyImageValidator {
	return &propertyImageValidator{}
}

// 画像追加の入力を検証
func (v *propertyImageValidator) ValidateAdd(in usecase.AddPropertyImageInput) error {
	var errs []usecase.FieldError

	if strings.TrimSpace(in.PropertyID) == "" {
		errs = append(errs, fieldError("idProperty", "idProperty is required"))
	}

	if strings.TrimSpace(in.URL) == "" {
		errs = append(errs, fieldError("url", "url is required"))
	} else if len(in.URL) > 300 {
		errs = append(errs, fieldError("url", "url must be 300 characters or fewer"))
	}

	return asError(errs)
}

// 複数アップロードの入力を検証
func (v *propertyImageValidator) ValidateUpload(in usecase.UploadPropertyImagesInput) error {
	var errs []usecase.FieldError

	if strings.TrimSpace(in.PropertyID) == "" {
		errs = append(errs, fieldError("idProperty", "idProperty is required"))
	}

	return asError(errs)
}
