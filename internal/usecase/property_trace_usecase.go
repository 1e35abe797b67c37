package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// usecaseがValidatorInterfaceに依存する約束
type PropertyTraceValidator interface {
	ValidateAdd(in AddPropertyTraceInput) error
}

type PropertyTraceUsecase struct {
	properties repo.PropertyRepository
	traces     repo.PropertyTraceRepository
	validator  PropertyTraceValidator
	idGen      IDGenerator
	clock      Clock
}

// DI
func NewPropertyTraceUsecase(
	properties repo.PropertyRepository,
	traces repo.PropertyTraceRepository,
	validator PropertyTraceValidator,
	idGen IDGenerator,
	clock Clock,
) *PropertyTraceUsecase {
	return &PropertyTraceUsecase{
		properties: properties,
		traces:     traces,
		validator:  validator,
		idGen:      idGen,
		clock:      clock,
	}
}

type AddPropertyTraceInput struct {
	PropertyID string
	Name       string
	Value      decimal.Decimal
	Tax        decimal.Decimal
	//未指定なら現在時刻
	DateSale *time.Time
}

type PropertyTraceOutput struct {
	ID         string          `json:"idPropertyTrace"`
	PropertyID string          `json:"idProperty"`
	DateSale   time.Time       `json:"dateSale"`
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Tax        decimal.Decimal `json:"tax"`
}

// 売買履歴を追記する。既存履歴の置き換えやマージはしない。
func (u *PropertyTraceUsecase) AddTrace(ctx context.Context, in AddPropertyTraceInput) (PropertyTraceOutput, error) {
	if err := u.validator.ValidateAdd(in); err != nil {
		return PropertyTraceOutput{}, err
	}

	ok, err := u.properties.ExistsByID(ctx, in.PropertyID)
	if err != nil {
		return PropertyTraceOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return PropertyTraceOutput{}, NewHTTPError(http.StatusNotFound, "property not found")
	}

	dateSale := u.clock.Now()
	if in.DateSale != nil {
		dateSale = *in.DateSale
	}

	created, err := u.traces.Create(ctx, model.PropertyTrace{
		ID:         u.idGen.NewID(),
		PropertyID: in.PropertyID,
		DateSale:   dateSale,
		Name:       in.Name,
		Value:      in.Value,
		Tax:        in.Tax,
	})
	if err != nil {
		return PropertyTraceOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return PropertyTraceOutput{
		ID:         created.ID,
		PropertyID: created.PropertyID,
		DateSale:   created.DateSale,
		Name:       created.Name,
		Value:      created.Value,
		Tax:        created.Tax,
	}, nil
}
