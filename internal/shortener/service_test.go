package shortener

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore 测试用的内存事件持久化，模拟数据库落库
type memStore struct {
	events []Event
}

func (s *memStore) Append(event Event) error {
	s.events = append(s.events, event)
	return nil
}

func (s *memStore) Load() ([]Event, error) {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(nil)
	require.NoError(t, err, "空日志初始化不应失败")
	return svc
}

// TestCreateShortLink_GeneratedSlugs 随机短码：批量创建后短码互不重复
func TestCreateShortLink_GeneratedSlugs(t *testing.T) {
	svc := newTestService(t)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		link, err := svc.CreateShortLink("https://example.com/page", "")
		require.NoError(t, err)
		assert.Len(t, link.Slug, 7, "随机短码长度应为 7")
		assert.False(t, seen[link.Slug], "短码 %q 重复", link.Slug)
		seen[link.Slug] = true
	}
}

// TestCreateShortLink_CustomSlug 自定义短码：首次成功，重复创建冲突且状态不变
func TestCreateShortLink_CustomSlug(t *testing.T) {
	svc := newTestService(t)

	link, err := svc.CreateShortLink("https://example.com/first", "abc")
	require.NoError(t, err)
	assert.Equal(t, ShortLink{Slug: "abc", URL: "https://example.com/first"}, link)

	_, err = svc.Redirect("abc")
	require.NoError(t, err)

	// 冲突的创建必须失败，且不影响已有链接和计数
	_, err = svc.CreateShortLink("https://example.com/second", "abc")
	assert.ErrorIs(t, err, ErrSlugAlreadyInUse)

	st, err := svc.GetStats("abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/first", st.Link.URL, "冲突创建不应覆盖原链接")
	assert.Equal(t, uint64(1), st.Redirects, "冲突创建不应影响计数")
	assert.Len(t, svc.Events(), 2, "失败的命令不应追加事件")
}

// TestCreateShortLink_InvalidURL URL 校验：非法地址一律拒绝且不产生事件
func TestCreateShortLink_InvalidURL(t *testing.T) {
	svc := newTestService(t)

	for _, raw := range []string{
		"",
		"not-a-url",
		"ftp://example.com/file",
		"https://",
		"://missing-scheme",
	} {
		_, err := svc.CreateShortLink(raw, "")
		assert.ErrorIs(t, err, ErrInvalidURL, "URL %q 应被拒绝", raw)
	}
	assert.Empty(t, svc.Events(), "非法 URL 不应产生任何事件")
}

// TestRedirect_Counter 跳转 N 次后计数应为 N，且每次返回同一链接
func TestRedirect_Counter(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateShortLink("https://example.com", "hot")
	require.NoError(t, err)

	const n = 5
	for i := 0; i < n; i++ {
		link, err := svc.Redirect("hot")
		require.NoError(t, err)
		assert.Equal(t, created, link, "跳转应返回不变的链接")
	}

	st, err := svc.GetStats("hot")
	require.NoError(t, err)
	assert.Equal(t, uint64(n), st.Redirects)
}

// TestUnknownSlug 未知短码：跳转和查询都返回未找到，且不产生事件
func TestUnknownSlug(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Redirect("nonexistent")
	assert.ErrorIs(t, err, ErrSlugNotFound)

	_, err = svc.GetStats("nonexistent")
	assert.ErrorIs(t, err, ErrSlugNotFound)

	assert.Empty(t, svc.Events())
}

// TestConcurrentCreates 并发创建：写锁串行化后短码仍然全局唯一
func TestConcurrentCreates(t *testing.T) {
	svc := newTestService(t)

	const workers = 50
	results := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			link, err := svc.CreateShortLink(fmt.Sprintf("https://example.com/%d", i), "")
			assert.NoError(t, err)
			results <- link.Slug
		}(i)
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for slug := range results {
		assert.False(t, seen[slug], "并发创建产生了重复短码 %q", slug)
		seen[slug] = true
	}
	assert.Len(t, seen, workers)
}

// TestRestartReplay 重启回放：仅凭持久化日志就能完整重建投影
func TestRestartReplay(t *testing.T) {
	store := &memStore{}

	svc, err := NewService(store)
	require.NoError(t, err)

	link, err := svc.CreateShortLink("https://example.com/doc", "doc")
	require.NoError(t, err)
	_, err = svc.CreateShortLink("https://example.com/other", "")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = svc.Redirect("doc")
		require.NoError(t, err)
	}

	// 模拟重启：用同一份持久化日志构建新聚合
	restarted, err := NewService(store)
	require.NoError(t, err)

	assert.Equal(t, svc.Events(), restarted.Events(), "重启后事件日志应一致")

	st, err := restarted.GetStats("doc")
	require.NoError(t, err)
	assert.Equal(t, link, st.Link)
	assert.Equal(t, uint64(3), st.Redirects, "计数应从日志完整恢复")
	assert.Len(t, restarted.Links(), 2)
}

// TestScenario 完整场景：创建 → 跳转两次 → 查询统计
func TestScenario(t *testing.T) {
	svc := newTestService(t)

	link, err := svc.CreateShortLink("https://example.com", "")
	require.NoError(t, err)
	assert.NotEmpty(t, link.Slug)
	assert.Equal(t, "https://example.com", link.URL)

	first, err := svc.Redirect(link.Slug)
	require.NoError(t, err)
	second, err := svc.Redirect(link.Slug)
	require.NoError(t, err)
	assert.Equal(t, link, first)
	assert.Equal(t, link, second)

	st, err := svc.GetStats(link.Slug)
	require.NoError(t, err)
	assert.Equal(t, Stats{Link: link, Redirects: 2}, st)
}
