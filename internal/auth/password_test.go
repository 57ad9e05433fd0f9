package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/employee-gin/internal/auth"
)

// TestPassword_HashAndCheck 测试密码哈希校验往返
func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"), "should be a bcrypt hash")
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, auth.CheckPassword("secret123", hash))
	assert.False(t, auth.CheckPassword("wrong", hash))
	assert.False(t, auth.CheckPassword("secret123", "not-a-hash"))
}

// TestPassword_HashesDiffer 测试相同明文产生不同哈希(随机盐)
func TestPassword_HashesDiffer(t *testing.T) {
	first, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	second, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
