package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	properties repo.PropertyRepository
	owners     repo.OwnerRepository
	images     repo.PropertyImageRepository
	traces     repo.PropertyTraceRepository
}

func (r *txReposGorm) Properties() repo.PropertyRepository  { return r.properties }
func (r *txReposGorm) Owners() repo.OwnerRepository         { return r.owners }
func (r *txReposGorm) Images() repo.PropertyImageRepository { return r.images }
func (r *txReposGorm) Traces() repo.PropertyTraceRepository { return r.traces }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			properties: NewPropertyGormRepository(tx),
			owners:     NewOwnerGormRepository(tx),
			images:     NewPropertyImageGormRepository(tx),
			traces:     NewPropertyTraceGormRepository(tx),
		}
		return fn(r)
	})
}
