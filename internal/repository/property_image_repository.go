package repository

import (
	"app/internal/domain/model"
	"context"
)

// 物件画像の永続化の約束。
// 読み出しは物件一覧のPreloadで行うので、ここは書き込みだけ。
type PropertyImageRepository interface {
	//対象物件のカバーフラグを全て下ろす
	ClearCovers(ctx context.Context, propertyID string) error

	Create(ctx context.Context, img model.PropertyImage) (model.PropertyImage, error)
}
