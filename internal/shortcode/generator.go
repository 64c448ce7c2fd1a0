package shortcode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	// Charset 包含用于生成短码的所有字符
	Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeLength 是生成的短码的长度
	CodeLength = 7
	// MaxAttempts 随机生成时的最大重试次数
	MaxAttempts = 10
)

var (
	// ErrCodeTaken 指定的短码已被占用
	ErrCodeTaken = errors.New("短码已被占用")
	// ErrExhausted 重试次数耗尽仍未找到空闲短码。62^7 的空间下这基本
	// 只会在 exists 判定本身异常时出现，调用方应按内部错误处理。
	ErrExhausted = errors.New("短码生成重试次数已耗尽")
)

// Allocate 分配一个未被占用的短码。本函数是纯决策：exists 是唯一的
// 外部依赖，函数自身不产生副作用，由调用方负责在检查与提交之间保持互斥。
//
// requested 非空时仅校验占用情况；为空时用加密安全随机源生成候选短码，
// 每个候选都重新生成并重新检查，最多 MaxAttempts 次，耗尽后显式报错
// 而不是无限循环。
func Allocate(requested string, exists func(code string) bool) (string, error) {
	if requested != "" {
		if exists(requested) {
			return "", ErrCodeTaken
		}
		return requested, nil
	}

	for i := 0; i < MaxAttempts; i++ {
		code, err := randomCode(CodeLength)
		if err != nil {
			return "", fmt.Errorf("生成随机短码失败: %w", err)
		}
		if !exists(code) {
			return code, nil
		}
	}
	return "", ErrExhausted
}

// randomCode 使用加密安全的随机数生成器生成一个给定长度的短码
func randomCode(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(Charset))))
		if err != nil {
			return "", err
		}
		b[i] = Charset[num.Int64()]
	}
	return string(b), nil
}
