package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// 一覧検索。nilのフィルタは条件なし扱い。
type PropertyListQuery struct {
	Name         string
	Address      string
	CodeInternal string
	OwnerID      string

	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinYear  *int
	MaxYear  *int

	OnlyWithImages bool

	SortBy string // name / year / price
	Desc   bool

	Page     int
	PageSize int
}

// 物件の永続化（保存・取得・検索）だけを約束。
type PropertyRepository interface {
	List(ctx context.Context, q PropertyListQuery) ([]model.Property, int64, error)
	FindByID(ctx context.Context, id string) (model.Property, error)
	ExistsByID(ctx context.Context, id string) (bool, error)

	//CodeInternalの一意チェック用（大文字小文字を区別した完全一致）
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByCodeExcept(ctx context.Context, code string, exceptID string) (bool, error)

	Create(ctx context.Context, p model.Property) (model.Property, error)

	//渡されたカラムだけを上書きする部分更新
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}
