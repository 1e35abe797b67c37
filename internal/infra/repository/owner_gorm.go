package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OwnerGormRepository struct {
	db *gorm.DB
}

// DI
func NewOwnerGormRepository(db *gorm.DB) *OwnerGormRepository {
	return &OwnerGormRepository{db: db}
}

func (r *OwnerGormRepository) FindByID(ctx context.Context, id string) (model.Owner, error) {
	var o model.Owner
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Owner{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Owner{}, err
	}
	return o, nil
}

func (r *OwnerGormRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Owner{}).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// 所有者の作成
func (r *OwnerGormRepository) Create(ctx context.Context, o model.Owner) (model.Owner, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Owner{}, err
	}
	return o, nil
}
