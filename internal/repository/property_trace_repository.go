package repository

import (
	"app/internal/domain/model"
	"context"
)

// 売買履歴の永続化の約束。追記のみ。
type PropertyTraceRepository interface {
	Create(ctx context.Context, t model.PropertyTrace) (model.PropertyTrace, error)
}
