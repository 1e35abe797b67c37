package model

import "time"

// 価格変更、物件更新など。
type AuditAction string

const (
	//物件の価格を変更した操作。
	AuditActionChangePrice AuditAction = "CHANGE_PRICE"
	//物件を部分更新した操作。
	AuditActionUpdateProperty AuditAction = "UPDATE_PROPERTY"
)

// 何に対する操作か
type AuditResourceType string

const (
	//物件に対する操作。
	AuditResourceProperty AuditResourceType = "property"

	//所有者に対する操作。
	AuditResourceOwner AuditResourceType = "owner"
)

// 監査ログ。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
type AuditLog struct {
	//IDは監査ログの主キー
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//操作したユーザー（JWTのsub）。
	Actor string `gorm:"type:varchar(150);not null;index" json:"actor"`

	//Actionは操作の種類（CHANGE_PRICE / UPDATE_PROPERTY など）。
	Action AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`

	//対象の種類（property / owner）。
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`

	//対象のID。
	ResourceID string `gorm:"type:uuid;not null;index" json:"resource_id"`

	//JSON文字列で保存する。
	BeforeJSON string `gorm:"type:text" json:"before_json"`

	//JSON文字列で保存する。
	AfterJSON string `gorm:"type:text" json:"after_json"`

	//作成時刻
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
