package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// usecaseがValidatorInterfaceに依存する約束
type PropertyValidator interface {
	ValidateCreate(in CreatePropertyInput) error
	ValidateUpdate(in UpdatePropertyInput) error
	ValidateChangePrice(in ChangePriceInput) error
	ValidateList(in ListPropertiesInput) error
}

type PropertyUsecase struct {
	properties repo.PropertyRepository
	owners     repo.OwnerRepository
	auditRepo  repo.AuditLogRepository
	validator  PropertyValidator
	idGen      IDGenerator
	clock      Clock
}

// DI
func NewPropertyUsecase(
	properties repo.PropertyRepository,
	owners repo.OwnerRepository,
	auditRepo repo.AuditLogRepository,
	validator PropertyValidator,
	idGen IDGenerator,
	clock Clock,
) *PropertyUsecase {
	return &PropertyUsecase{
		properties: properties,
		owners:     owners,
		auditRepo:  auditRepo,
		validator:  validator,
		idGen:      idGen,
		clock:      clock,
	}
}

type CreatePropertyInput struct {
	Name         string
	Address      string
	Price        decimal.Decimal
	CodeInternal string
	Year         int
	OwnerID      string
}

// 部分更新。nilのフィールドは「変更しない」。
type UpdatePropertyInput struct {
	PropertyID   string
	Name         *string
	Address      *string
	Price        *decimal.Decimal
	CodeInternal *string
	Year         *int
	OwnerID      *string
}

type ChangePriceInput struct {
	PropertyID string
	NewPrice   decimal.Decimal
}

type PropertyOutput struct {
	ID           string          `json:"idProperty"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Price        decimal.Decimal `json:"price"`
	CodeInternal string          `json:"codeInternal"`
	Year         int             `json:"year"`
	OwnerID      string          `json:"idOwner"`
}

func toPropertyOutput(p model.Property) PropertyOutput {
	return PropertyOutput{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		OwnerID:      p.OwnerID,
	}
}

// 物件を作成する。CodeInternalは全物件で一意（完全一致）。
func (u *PropertyUsecase) CreateProperty(ctx context.Context, in CreatePropertyInput) (PropertyOutput, error) {
	if err := u.validator.ValidateCreate(in); err != nil {
		return PropertyOutput{}, err
	}

	//所有者の存在確認
	ok, err := u.owners.ExistsByID(ctx, in.OwnerID)
	if err != nil {
		return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !ok {
		return PropertyOutput{}, NewHTTPError(http.StatusNotFound, "owner not found")
	}

	//CodeInternalの重複は409
	exists, err := u.properties.ExistsByCode(ctx, in.CodeInternal)
	if err != nil {
		return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return PropertyOutput{}, NewHTTPError(http.StatusConflict, "codeInternal already exists: "+in.CodeInternal)
	}

	created, err := u.properties.Create(ctx, model.Property{
		ID:           u.idGen.NewID(),
		Name:         in.Name,
		Address:      in.Address,
		Price:        in.Price,
		CodeInternal: in.CodeInternal,
		Year:         in.Year,
		OwnerID:      in.OwnerID,
	})
	if err != nil {
		return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toPropertyOutput(created), nil
}

// 物件の部分更新。渡されたフィールドだけを無条件で上書きし、1回でcommitする。
// 前提チェックは最初に失敗したものだけを返す（fail-fast）。
func (u *PropertyUsecase) UpdateProperty(ctx context.Context, actor string, in UpdatePropertyInput) (PropertyOutput, error) {
	if err := u.validator.ValidateUpdate(in); err != nil {
		return PropertyOutput{}, err
	}

	p, err := u.properties.FindByID(ctx, in.PropertyID)
	if errors.Is(err, repo.ErrNotFound) {
		return PropertyOutput{}, NewHTTPError(http.StatusNotFound, "property not found")
	}
	if err != nil {
		return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//所有者を差し替えるときだけ、新しい所有者の存在を確認する
	if in.OwnerID != nil && *in.OwnerID != p.OwnerID {
		ok, err := u.owners.ExistsByID(ctx, *in.OwnerID)
		if err != nil {
			return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return PropertyOutput{}, NewHTTPError(http.StatusNotFound, "owner not found")
		}
	}

	//CodeInternalを変えるときは他物件との衝突を確認する
	if in.CodeInternal != nil && *in.CodeInternal != p.CodeInternal {
		taken, err := u.properties.ExistsByCodeExcept(ctx, *in.CodeInternal, p.ID)
		if err != nil {
			return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if taken {
			return PropertyOutput{}, NewHTTPError(http.StatusConflict, "codeInternal already exists: "+*in.CodeInternal)
		}
	}

	beforeJSON, _ := json.Marshal(toPropertyOutput(p))

	fields := map[string]interface{}{}
	if in.Name != nil {
		p.Name = *in.Name
		fields["name"] = *in.Name
	}
	if in.Address != nil {
		p.Address = *in.Address
		fields["address"] = *in.Address
	}
	if in.Price != nil {
		p.Price = *in.Price
		fields["price"] = *in.Price
	}
	if in.CodeInternal != nil {
		p.CodeInternal = *in.CodeInternal
		fields["code_internal"] = *in.CodeInternal
	}
	if in.Year != nil {
		p.Year = *in.Year
		fields["year"] = *in.Year
	}
	if in.OwnerID != nil {
		p.OwnerID = *in.OwnerID
		fields["owner_id"] = *in.OwnerID
	}

	if err := u.properties.Update(ctx, p.ID, fields); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return PropertyOutput{}, NewHTTPError(http.StatusNotFound, "property not found")
		}
		return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	afterJSON, _ := json.Marshal(toPropertyOutput(p))

	//監査ログを作成（物件更新）
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		Actor:        actor,
		Action:       model.AuditActionUpdateProperty,
		ResourceType: model.AuditResourceProperty,
		ResourceID:   p.ID,
		BeforeJSON:   string(beforeJSON),
		AfterJSON:    string(afterJSON),
		CreatedAt:    u.clock.Now(),
	}); err != nil {
		return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toPropertyOutput(p), nil
}

// 価格変更。同じ価格なら書き込みせず現状を返す（冪等）。
func (u *PropertyUsecase) ChangePropertyPrice(ctx context.Context, actor string, in ChangePriceInput) (PropertyOutput, error) {
	if err := u.validator.ValidateChangePrice(in); err != nil {
		return PropertyOutput{}, err
	}

	p, err := u.properties.FindByID(ctx, in.PropertyID)
	if errors.Is(err, repo.ErrNotFound) {
		return PropertyOutput{}, NewHTTPError(http.StatusNotFound, "property not found")
	}
	if err != nil {
		return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//価格が変わらないなら何もしない
	if p.Price.Equal(in.NewPrice) {
		return toPropertyOutput(p), nil
	}

	beforeJSON := `{"price":"` + p.Price.String() + `"}`
	afterJSON := `{"price":"` + in.NewPrice.String() + `"}`

	if err := u.properties.Update(ctx, p.ID, map[string]interface{}{"price": in.NewPrice}); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return PropertyOutput{}, NewHTTPError(http.StatusNotFound, "property not found")
		}
		return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//監査ログを作成（価格変更）
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		Actor:        actor,
		Action:       model.AuditActionChangePrice,
		ResourceType: model.AuditResourceProperty,
		ResourceID:   p.ID,
		BeforeJSON:   beforeJSON,
		AfterJSON:    afterJSON,
		CreatedAt:    u.clock.Now(),
	}); err != nil {
		return PropertyOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.Price = in.NewPrice
	return toPropertyOutput(p), nil
}
