package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// usecaseがValidatorInterfaceに依存する約束
type OwnerValidator interface {
	ValidateCreate(in CreateOwnerInput) error
}

type OwnerUsecase struct {
	owners    repo.OwnerRepository
	validator OwnerValidator
	idGen     IDGenerator
}

// DI
func NewOwnerUsecase(owners repo.OwnerRepository, validator OwnerValidator, idGen IDGenerator) *OwnerUsecase {
	return &OwnerUsecase{
		owners:    owners,
		validator: validator,
		idGen:     idGen,
	}
}

// POST /api/Owners の入力
type CreateOwnerInput struct {
	Name     string
	Address  *string
	Photo    *string
	Birthday *time.Time
}

type OwnerOutput struct {
	ID       string     `json:"idOwner"`
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Photo    string     `json:"photo"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

func toOwnerOutput(o model.Owner) OwnerOutput {
	return OwnerOutput{
		ID:       o.ID,
		Name:     o.Name,
		Address:  o.Address,
		Photo:    o.Photo,
		Birthday: o.Birthday,
	}
}

// 所有者を作成する。所有者に一意制約はない。
func (u *OwnerUsecase) CreateOwner(ctx context.Context, in CreateOwnerInput) (OwnerOutput, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateCreate(in); err != nil {
		return OwnerOutput{}, err
	}

	//address/photoの未指定は空文字に正規化する（nullでは保存しない）
	o := model.Owner{
		ID:       u.idGen.NewID(),
		Name:     in.Name,
		Birthday: in.Birthday,
	}
	if in.Address != nil {
		o.Address = *in.Address
	}
	if in.Photo != nil {
		o.Photo = *in.Photo
	}

	created, err := u.owners.Create(ctx, o)
	if err != nil {
		return OwnerOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toOwnerOutput(created), nil
}
