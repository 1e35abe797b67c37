package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 売買履歴。作成後は更新も削除もしない（追記専用）。
type PropertyTrace struct {
	ID         string          `gorm:"type:uuid;primaryKey" json:"idPropertyTrace"`
	PropertyID string          `gorm:"type:uuid;not null;index" json:"idProperty"`
	DateSale   time.Time       `gorm:"not null" json:"dateSale"`
	Name       string          `gorm:"type:varchar(150);not null" json:"name"`
	Value      decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"value"`
	Tax        decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"tax"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
