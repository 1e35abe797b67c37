package repository

import (
	"app/internal/domain/model"
	"context"
)

// 所有者の永続化だけを約束。
type OwnerRepository interface {
	FindByID(ctx context.Context, id string) (model.Owner, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, o model.Owner) (model.Owner, error)
}
