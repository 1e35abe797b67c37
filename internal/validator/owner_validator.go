package validator

import (
	"strings"

	"app/internal/usecase"
)

type ownerValidator struct {
	clock usecase.Clock
}

// Usecaseは interface を依存注入
func NewOwnerValidator(clock usecase.Clock) usecase.OwnerValidator {
	return &ownerValidator{clock: clock}
}

// 所有者作成の入力を検証。違反は全フィールド分まとめて返す。
func (v *ownerValidator) ValidateCreate(in usecase.CreateOwnerInput) error {
	var errs []usecase.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, fieldError("name", "name is required"))
	} else if len(in.Name) > 150 {
		errs = append(errs, fieldError("name", "name must be 150 characters or fewer"))
	}

	if in.Address != nil && len(*in.Address) > 250 {
		errs = append(errs, fieldError("address", "address must be 250 characters or fewer"))
	}

	if in.Photo != nil && len(*in.Photo) > 300 {
		errs = append(errs, fieldError("photo", "photo must be 300 characters or fewer"))
	}

	//誕生日は未来不可
	if in.Birthday != nil && in.Birthday.After(v.clock.Now()) {
		errs = append(errs, fieldError("birthday", "birthday must not be in the future"))
	}

	return asError(errs)
}
