package shortener

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []Event {
	return []Event{
		{Seq: 1, Type: EventLinkCreated, Slug: "abc", URL: "https://example.com/a"},
		{Seq: 2, Type: EventLinkCreated, Slug: "xyz", URL: "https://example.com/b"},
		{Seq: 3, Type: EventLinkRedirected, Slug: "abc"},
		{Seq: 4, Type: EventLinkRedirected, Slug: "abc"},
		{Seq: 5, Type: EventLinkRedirected, Slug: "xyz"},
	}
}

// TestReplay_Deterministic 同一事件序列回放两次，投影状态完全一致
func TestReplay_Deterministic(t *testing.T) {
	events := sampleEvents()

	first := NewProjection()
	require.NoError(t, first.Replay(events))
	second := NewProjection()
	require.NoError(t, second.Replay(events))

	assert.Equal(t, first, second, "回放必须是确定性的")

	st, ok := first.Stats("abc")
	require.True(t, ok)
	assert.Equal(t, uint64(2), st.Redirects)
	st, ok = first.Stats("xyz")
	require.True(t, ok)
	assert.Equal(t, uint64(1), st.Redirects)
}

// TestReplay_IncrementalFold 整体回放 E 再折叠 e，等价于回放 E++[e]
func TestReplay_IncrementalFold(t *testing.T) {
	events := sampleEvents()
	next := Event{Seq: 6, Type: EventLinkRedirected, Slug: "xyz"}

	incremental := NewProjection()
	require.NoError(t, incremental.Replay(events))
	require.NoError(t, incremental.Fold(next))

	full := NewProjection()
	require.NoError(t, full.Replay(append(sampleEvents(), next)))

	assert.Equal(t, full, incremental, "增量折叠与整体回放结果应一致")
}

// TestFold_DuplicateCreated 重复的创建事件说明日志损坏，必须报错而非覆盖
func TestFold_DuplicateCreated(t *testing.T) {
	p := NewProjection()
	require.NoError(t, p.Fold(Event{Seq: 1, Type: EventLinkCreated, Slug: "abc", URL: "https://example.com"}))

	err := p.Fold(Event{Seq: 2, Type: EventLinkCreated, Slug: "abc", URL: "https://evil.example.com"})
	assert.ErrorIs(t, err, ErrCorruptLog)

	link, ok := p.Link("abc")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", link.URL, "损坏事件不应覆盖已有链接")
}

// TestFold_OrphanRedirect 孤立的跳转事件必须报错而非静默忽略
func TestFold_OrphanRedirect(t *testing.T) {
	p := NewProjection()
	err := p.Fold(Event{Seq: 1, Type: EventLinkRedirected, Slug: "ghost"})
	assert.ErrorIs(t, err, ErrCorruptLog)
}

// TestReplay_CorruptLogAborts 损坏的日志整体回放时向上传播错误
func TestReplay_CorruptLogAborts(t *testing.T) {
	p := NewProjection()
	err := p.Replay([]Event{
		{Seq: 1, Type: EventLinkCreated, Slug: "abc", URL: "https://example.com"},
		{Seq: 2, Type: EventLinkRedirected, Slug: "ghost"},
	})
	assert.ErrorIs(t, err, ErrCorruptLog)
}

// TestEventLog_AppendAndReadAll 序号单调递增，ReadAll 每次返回完整有序副本
func TestEventLog_AppendAndReadAll(t *testing.T) {
	log := NewEventLog(nil)

	seq, err := log.Append(Event{Type: EventLinkCreated, Slug: "abc", URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)
	seq, err = log.Append(Event{Type: EventLinkRedirected, Slug: "abc"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), seq)

	first := log.ReadAll()
	second := log.ReadAll()
	assert.Equal(t, first, second, "重复读取应得到相同序列")
	assert.Len(t, first, 2)

	// 返回的是副本，修改它不应影响日志
	first[0].Slug = "mutated"
	assert.Equal(t, "abc", log.ReadAll()[0].Slug)
}
