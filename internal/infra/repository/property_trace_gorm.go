package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type PropertyTraceGormRepository struct {
	db *gorm.DB
}

// DI
func NewPropertyTraceGormRepository(db *gorm.DB) *PropertyTraceGormRepository {
	return &PropertyTraceGormRepository{db: db}
}

// 売買履歴の追記。既存行の更新・削除はしない。
func (r *PropertyTraceGormRepository) Create(ctx context.Context, t model.PropertyTrace) (model.PropertyTrace, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.PropertyTrace{}, err
	}
	return t, nil
}
