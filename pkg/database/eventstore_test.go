package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shortlink-cqrs/internal/model"
	"shortlink-cqrs/internal/shortener"
)

func setupStore(t *testing.T) *EventStore {
	t.Helper()
	// 带名字的共享内存库，避免连接池里每个连接各开一个空库
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "无法连接到内存数据库")
	require.NoError(t, db.AutoMigrate(&model.EventRecord{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return NewEventStore(db)
}

// TestEventStore_AppendLoad 落库后按追加顺序完整读回
func TestEventStore_AppendLoad(t *testing.T) {
	store := setupStore(t)

	events := []shortener.Event{
		{Type: shortener.EventLinkCreated, Slug: "abc", URL: "https://example.com"},
		{Type: shortener.EventLinkRedirected, Slug: "abc"},
		{Type: shortener.EventLinkCreated, Slug: "xyz", URL: "https://example.com/b"},
	}
	for _, e := range events {
		require.NoError(t, store.Append(e))
	}

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	for i, e := range loaded {
		assert.Equal(t, uint64(i+1), e.Seq, "读回顺序应与追加顺序一致")
		assert.Equal(t, events[i].Type, e.Type)
		assert.Equal(t, events[i].Slug, e.Slug)
		assert.Equal(t, events[i].URL, e.URL)
	}
}

// TestEventStore_LoadEmpty 空表读回空序列
func TestEventStore_LoadEmpty(t *testing.T) {
	store := setupStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
