package model

import (
	"time"
)

// EventRecord 事件日志的持久化行。每追加一个领域事件就落一行，
// ID 即追加顺序；行只插入、从不更新或删除。
type EventRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	EventType string    `gorm:"size:32;not null;index" json:"event_type"`
	Slug      string    `gorm:"size:64;not null;index" json:"slug"`
	TargetURL string    `gorm:"type:text" json:"target_url"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (EventRecord) TableName() string {
	return "event_records"
}
