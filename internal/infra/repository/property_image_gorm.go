package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type PropertyImageGormRepository struct {
	db *gorm.DB
}

// DI
func NewPropertyImageGormRepository(db *gorm.DB) *PropertyImageGormRepository {
	return &PropertyImageGormRepository{db: db}
}

// 対象物件のカバーフラグを全て下ろす。
// 下ろす→新しいカバーを挿す、を同じTxで行うことで「カバーは最大1枚」を守る。
func (r *PropertyImageGormRepository) ClearCovers(ctx context.Context, propertyID string) error {
	return r.db.WithContext(ctx).
		Model(&model.PropertyImage{}).
		Where("property_id = ? AND is_cover = ?", propertyID, true).
		Update("is_cover", false).Error
}

func (r *PropertyImageGormRepository) Create(ctx context.Context, img model.PropertyImage) (model.PropertyImage, error) {
	if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
		return model.PropertyImage{}, err
	}
	return img, nil
}
