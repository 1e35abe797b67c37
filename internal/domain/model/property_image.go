package model

import "time"

// 物件画像。1物件あたりカバー（IsCover=true）は最大1枚。
type PropertyImage struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"idPropertyImage"`
	PropertyID string `gorm:"type:uuid;not null;index" json:"idProperty"`
	URL        string `gorm:"type:varchar(300);not null" json:"url"`
	IsCover    bool   `gorm:"not null;default:false" json:"isCover"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
