package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomShortCode_Length(t *testing.T) {
	for _, n := range []int{1, 8, 16} {
		assert.Len(t, RandomShortCode(n), n)
	}
}

func TestRandomShortCode_Alphabet(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	for i := 0; i < 100; i++ {
		code := RandomShortCode(8)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune(alphabet, ch), "非法字符 %q", ch)
		}
	}
}

func TestRandomShortCode_MostlyDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[RandomShortCode(8)] = true
	}
	// 62^8 的码空间下 1000 次生成几乎不可能重复
	assert.Len(t, seen, 1000)
}
