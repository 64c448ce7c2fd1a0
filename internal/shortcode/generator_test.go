package shortcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocate_Requested 指定短码：空闲即成功，占用即冲突
func TestAllocate_Requested(t *testing.T) {
	code, err := Allocate("my-link", func(string) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, "my-link", code)

	_, err = Allocate("my-link", func(string) bool { return true })
	assert.ErrorIs(t, err, ErrCodeTaken)
}

// TestAllocate_Generated 随机生成：长度和字符集符合约定
func TestAllocate_Generated(t *testing.T) {
	seen := make(map[string]bool)
	code, err := Allocate("", func(c string) bool { return seen[c] })
	require.NoError(t, err)

	assert.Len(t, code, CodeLength)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(Charset, r), "短码包含非法字符 %q", r)
	}
}

// TestAllocate_RetriesFreshCandidates 每次重试都生成新的候选短码
func TestAllocate_RetriesFreshCandidates(t *testing.T) {
	var candidates []string
	code, err := Allocate("", func(c string) bool {
		candidates = append(candidates, c)
		// 前两个候选都判为占用，强制重试
		return len(candidates) <= 2
	})
	require.NoError(t, err)

	require.Len(t, candidates, 3)
	assert.Equal(t, candidates[2], code)
	assert.NotEqual(t, candidates[0], candidates[1], "重试必须换新候选，不能复用旧值")
}

// TestAllocate_Exhausted 重试次数耗尽后显式报错，绝不无限循环
func TestAllocate_Exhausted(t *testing.T) {
	attempts := 0
	_, err := Allocate("", func(string) bool {
		attempts++
		return true
	})
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, MaxAttempts, attempts)
}
