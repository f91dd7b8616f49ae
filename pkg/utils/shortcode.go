package utils

import "math/rand"

// 短码字母表：URL-safe 的大小写字母与数字
const shortCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomShortCode 生成长度为 n 的随机短码
// 不保证全局唯一，唯一性由数据库约束加重试保证
func RandomShortCode(n int) string {
	code := make([]byte, n)
	for i := range code {
		code[i] = shortCodeAlphabet[rand.Intn(len(shortCodeAlphabet))]
	}
	return string(code)
}
