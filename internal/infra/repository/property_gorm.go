package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PropertyGormRepository struct {
	db *gorm.DB
}

// DI
func NewPropertyGormRepository(db *gorm.DB) *PropertyGormRepository {
	return &PropertyGormRepository{db: db}
}

// 物件を、文字列フィルタ/価格帯/築年帯/画像有無/ソート/ページング付きで返す。
// totalはページング前の件数。
func (r *PropertyGormRepository) List(ctx context.Context, q repo.PropertyListQuery) ([]model.Property, int64, error) {
	var props []model.Property
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Property{})

	//部分一致フィルタ（name / address / code_internal）
	if s := strings.TrimSpace(q.Name); s != "" {
		tx = tx.Where("name ILIKE ?", "%"+s+"%")
	}
	if s := strings.TrimSpace(q.Address); s != "" {
		tx = tx.Where("address ILIKE ?", "%"+s+"%")
	}
	if s := strings.TrimSpace(q.CodeInternal); s != "" {
		tx = tx.Where("code_internal ILIKE ?", "%"+s+"%")
	}

	if q.OwnerID != "" {
		tx = tx.Where("owner_id = ?", q.OwnerID)
	}

	//価格帯
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}

	//築年帯
	if q.MinYear != nil {
		tx = tx.Where("year >= ?", *q.MinYear)
	}
	if q.MaxYear != nil {
		tx = tx.Where("year <= ?", *q.MaxYear)
	}

	//画像が1枚以上ある物件だけ
	if q.OnlyWithImages {
		tx = tx.Where("EXISTS (SELECT 1 FROM property_images i WHERE i.property_id = properties.id)")
	}

	//total（件数）はページング前に数える
	if err := tx.Count(&total).Error; err != nil {
		return []model.Property{}, 0, err
	}

	primary, tieBreak := listOrderClauses(q.SortBy, q.Desc)
	tx = tx.Order(primary).Order(tieBreak)

	if err := tx.Preload("Images").Offset(listOffset(q.Page, q.PageSize)).Limit(q.PageSize).Find(&props).Error; err != nil {
		return []model.Property{}, 0, err
	}

	return props, total, nil
}

// sortキーをORDER BY句へ。不明なキーはprice ascへフォールバック。
// idのタイブレークでページングを決定的にする。
func listOrderClauses(sortBy string, desc bool) (string, string) {
	dir := "asc"
	if desc {
		dir = "desc"
	}
	switch sortBy {
	case "name", "year", "price":
		return sortBy + " " + dir, "id " + dir
	default:
		return "price asc", "id asc"
	}
}

func listOffset(page int, pageSize int) int {
	return (page - 1) * pageSize
}

// IDで物件を取得
func (r *PropertyGormRepository) FindByID(ctx context.Context, id string) (model.Property, error) {
	var p model.Property
	err := r.db.WithContext(ctx).Preload("Images").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Property{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Property{}, err
	}
	return p, nil
}

func (r *PropertyGormRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CodeInternalは完全一致（大文字小文字を区別）
func (r *PropertyGormRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).Where("code_internal = ?", code).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PropertyGormRepository) ExistsByCodeExcept(ctx context.Context, code string, exceptID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("code_internal = ? AND id <> ?", code, exceptID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// 物件の作成
func (r *PropertyGormRepository) Create(ctx context.Context, p model.Property) (model.Property, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Property{}, err
	}
	return p, nil
}

// 渡されたカラムだけを上書きする部分更新
func (r *PropertyGormRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&model.Property{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
