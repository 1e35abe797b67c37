package model

import "time"

// 物件の所有者。
type Owner struct {
	ID       string     `gorm:"type:uuid;primaryKey" json:"idOwner"`
	Name     string     `gorm:"type:varchar(150);not null" json:"name"`
	Address  string     `gorm:"type:varchar(250);not null" json:"address"`
	Photo    string     `gorm:"type:varchar(300);not null" json:"photo"`
	Birthday *time.Time `json:"birthday,omitempty"`

	//所有物件（参照用。Owner側からは更新しない）
	Properties []Property `gorm:"foreignKey:OwnerID" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
