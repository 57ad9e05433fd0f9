package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SanitizeString 清理字符串,移除或转义危险字符
func SanitizeString(input string) string {
	// 1. HTML 转义,防止 XSS
	sanitized := html.EscapeString(input)

	// 2. 移除控制字符(除了换行符和制表符)
	var result strings.Builder
	for _, r := range sanitized {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		result.WriteRune(r)
	}

	return result.String()
}

// ValidateEmail 验证邮箱格式
func ValidateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ErrEmptyEmail
	}
	if len(trimmed) > 100 {
		return ErrEmailTooLong
	}
	if !emailPattern.MatchString(trimmed) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// ValidateFullName 验证姓名
func ValidateFullName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if len(trimmed) > 100 {
		return ErrNameTooLong
	}
	if containsDangerousChars(trimmed) {
		return ErrDangerousChars
	}
	return nil
}

// ValidatePassword 验证密码强度(最小长度)
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrPasswordTooShort
	}
	if len(password) > 72 {
		// bcrypt 输入上限
		return ErrPasswordTooLong
	}
	return nil
}

// TrimAndValidate 清理并验证字符串
func TrimAndValidate(s string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrEmptyString
	}
	if maxLen > 0 && len(trimmed) > maxLen {
		return "", ErrStringTooLong
	}
	if containsDangerousChars(trimmed) {
		return "", ErrDangerousChars
	}
	return SanitizeString(trimmed), nil
}

// containsDangerousChars 检查字符串是否包含危险字符
func containsDangerousChars(s string) bool {
	// 检查常见的 XSS 和 SQL 注入模式
	dangerousPatterns := []string{
		"<script",
		"</script>",
		"javascript:",
		"onerror=",
		"onload=",
		"'; --",
		"DROP TABLE",
		"DELETE FROM",
		"INSERT INTO",
		"UNION SELECT",
		"<iframe",
	}

	lower := strings.ToLower(s)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, strings.ToLower(pattern)) {
			return true
		}
	}

	return false
}

// 错误定义
var (
	ErrEmptyEmail         = &ValidationError{Code: "EMPTY_EMAIL", Message: "email cannot be empty"}
	ErrEmailTooLong       = &ValidationError{Code: "EMAIL_TOO_LONG", Message: "email exceeds maximum length"}
	ErrInvalidEmailFormat = &ValidationError{Code: "INVALID_EMAIL_FORMAT", Message: "email format is invalid"}
	ErrEmptyName          = &ValidationError{Code: "EMPTY_NAME", Message: "name cannot be empty"}
	ErrNameTooLong        = &ValidationError{Code: "NAME_TOO_LONG", Message: "name exceeds maximum length"}
	ErrDangerousChars     = &ValidationError{Code: "DANGEROUS_CHARS", Message: "value contains dangerous characters"}
	ErrPasswordTooShort   = &ValidationError{Code: "PASSWORD_TOO_SHORT", Message: "password must be at least 6 characters"}
	ErrPasswordTooLong    = &ValidationError{Code: "PASSWORD_TOO_LONG", Message: "password exceeds maximum length"}
	ErrEmptyString        = &ValidationError{Code: "EMPTY_STRING", Message: "string cannot be empty"}
	ErrStringTooLong      = &ValidationError{Code: "STRING_TOO_LONG", Message: "string exceeds maximum length"}
)

// ValidationError 验证错误
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
