package database

import (
	"fmt"

	"gorm.io/gorm"

	"shortlink-cqrs/internal/model"
	"shortlink-cqrs/internal/shortener"
)

// EventStore 基于 gorm 的事件持久化实现，是核心 shortener.EventStore
// 接口的数据库适配器。事件表只追加，回放时按主键顺序读出即是追加顺序。
type EventStore struct {
	db *gorm.DB
}

// NewEventStore 创建事件持久化适配器
func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

// Append 落库一条事件记录
func (s *EventStore) Append(event shortener.Event) error {
	record := model.EventRecord{
		EventType: string(event.Type),
		Slug:      event.Slug,
		TargetURL: event.URL,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("事件落库失败: %w", err)
	}
	return nil
}

// Load 按追加顺序读出全部历史事件
func (s *EventStore) Load() ([]shortener.Event, error) {
	var records []model.EventRecord
	if err := s.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("读取事件日志失败: %w", err)
	}

	events := make([]shortener.Event, 0, len(records))
	for _, r := range records {
		events = append(events, shortener.Event{
			Seq:  uint64(r.ID),
			Type: shortener.EventType(r.EventType),
			Slug: r.Slug,
			URL:  r.TargetURL,
		})
	}
	return events, nil
}
