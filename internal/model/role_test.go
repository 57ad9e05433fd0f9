package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mautops/employee-gin/internal/model"
)

// TestParseRole 测试角色解析
func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  model.Role
	}{
		{"Admin", model.RoleAdmin},
		{"admin", model.RoleAdmin},
		{"  ADMIN  ", model.RoleAdmin},
		{"Employee", model.RoleEmployee},
		{"employee", model.RoleEmployee},
		{"", model.RoleEmployee}, // 缺省角色
	}

	for _, tc := range cases {
		got, err := model.ParseRole(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	_, err := model.ParseRole("superuser")
	assert.Error(t, err)

	assert.True(t, model.RoleAdmin.Valid())
	assert.False(t, model.Role("Root").Valid())
}

// TestNormalizeEmail 测试邮箱规范化
func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", model.NormalizeEmail("  Alice@Example.COM  "))
}
