package usecase

import "time"

// 新しいIDを発行する約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}
