package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 物件。CodeInternalは全物件で一意。
type Property struct {
	ID           string          `gorm:"type:uuid;primaryKey" json:"idProperty"`
	Name         string          `gorm:"type:varchar(200);not null" json:"name"`
	Address      string          `gorm:"type:varchar(300);not null" json:"address"`
	Price        decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"price"`
	CodeInternal string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"codeInternal"`
	Year         int             `gorm:"not null" json:"year"`

	OwnerID string `gorm:"type:uuid;not null;index" json:"idOwner"`
	Owner   *Owner `gorm:"foreignKey:OwnerID" json:"-"`

	Images []PropertyImage `gorm:"foreignKey:PropertyID" json:"-"`
	Traces []PropertyTrace `gorm:"foreignKey:PropertyID" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
