package model

import (
	"fmt"
	"strings"
)

// Role 账户角色
// 闭合枚举,入口处统一解析,内部不再做大小写比较
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleEmployee Role = "Employee"
)

// ParseRole 解析角色字符串(大小写不敏感)
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "employee", "":
		// 未指定角色时默认为 Employee
		return RoleEmployee, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// String 返回角色的规范字符串
func (r Role) String() string {
	return string(r)
}

// Valid 判断角色是否合法
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}
