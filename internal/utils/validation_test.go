package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/employee-gin/internal/utils"
)

// TestValidateEmail 测试邮箱格式验证
func TestValidateEmail(t *testing.T) {
	assert.NoError(t, utils.ValidateEmail("alice@example.com"))
	assert.NoError(t, utils.ValidateEmail("  alice@example.com  "))

	assert.ErrorIs(t, utils.ValidateEmail(""), utils.ErrEmptyEmail)
	assert.ErrorIs(t, utils.ValidateEmail("   "), utils.ErrEmptyEmail)
	assert.ErrorIs(t, utils.ValidateEmail("no-at-sign"), utils.ErrInvalidEmailFormat)
	assert.ErrorIs(t, utils.ValidateEmail("two@@example.com"), utils.ErrInvalidEmailFormat)
	assert.ErrorIs(t, utils.ValidateEmail("no-domain@"), utils.ErrInvalidEmailFormat)

	long := strings.Repeat("a", 95) + "@example.com"
	assert.ErrorIs(t, utils.ValidateEmail(long), utils.ErrEmailTooLong)
}

// TestValidateFullName 测试姓名验证
func TestValidateFullName(t *testing.T) {
	assert.NoError(t, utils.ValidateFullName("Alice Zhang"))

	assert.ErrorIs(t, utils.ValidateFullName(""), utils.ErrEmptyName)
	assert.ErrorIs(t, utils.ValidateFullName(strings.Repeat("x", 101)), utils.ErrNameTooLong)
	assert.ErrorIs(t, utils.ValidateFullName("<script>alert(1)</script>"), utils.ErrDangerousChars)
}

// TestValidatePassword 测试密码长度边界
func TestValidatePassword(t *testing.T) {
	assert.NoError(t, utils.ValidatePassword("secret"))
	assert.NoError(t, utils.ValidatePassword(strings.Repeat("p", 72)))

	assert.ErrorIs(t, utils.ValidatePassword("short"), utils.ErrPasswordTooShort)
	assert.ErrorIs(t, utils.ValidatePassword(strings.Repeat("p", 73)), utils.ErrPasswordTooLong)
}

// TestTrimAndValidate 测试字符串清理与验证
func TestTrimAndValidate(t *testing.T) {
	got, err := utils.TrimAndValidate("  hello  ", 50)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = utils.TrimAndValidate("   ", 50)
	assert.ErrorIs(t, err, utils.ErrEmptyString)

	_, err = utils.TrimAndValidate(strings.Repeat("x", 51), 50)
	assert.ErrorIs(t, err, utils.ErrStringTooLong)

	_, err = utils.TrimAndValidate("'; -- DROP TABLE accounts", 100)
	assert.ErrorIs(t, err, utils.ErrDangerousChars)
}

// TestSanitizeString 测试 HTML 转义与控制字符清理
func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "a &amp; b", utils.SanitizeString("a & b"))
	assert.Equal(t, "line1\nline2", utils.SanitizeString("line1\nline2"))
	assert.Equal(t, "clean", utils.SanitizeString("cle\x00an"))
}

// TestGeneratePassword 测试随机密码生成
func TestGeneratePassword(t *testing.T) {
	first := utils.GeneratePassword()
	second := utils.GeneratePassword()

	assert.Len(t, first, 8)
	assert.Len(t, second, 8)
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "-")
}
