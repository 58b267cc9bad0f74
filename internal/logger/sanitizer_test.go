package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected interface{}
	}{
		{
			name:     "Atlassian API token",
			input:    "ATATT3xFfGF0abcdefghijklmnopqrstuvwxyz",
			expected: "ATATT***MASKED***",
		},
		{
			name:     "Bearer header",
			input:    "Bearer NjM4ODc0NzE2MjQ0OmFiY2RlZmdo",
			expected: "Bearer ***MASKED***",
		},
		{
			name:     "Basic header",
			input:    "Basic dXNlcjpwYXNzd29yZA==",
			expected: "Basic ***MASKED***",
		},
		{
			name:     "通常の文字列",
			input:    "TST-123",
			expected: "TST-123",
		},
		{
			name:     "整数",
			input:    42,
			expected: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeValue(tt.input))
		})
	}
}

func TestSanitizeKeyValue(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    interface{}
		expected interface{}
	}{
		{name: "password", key: "password", value: "hunter2", expected: "***MASKED***"},
		{name: "jira_token", key: "jira_token", value: "abc", expected: "***MASKED***"},
		{name: "サフィックス一致", key: "user_password", value: "abc", expected: "***MASKED***"},
		{name: "Authorizationはスキームを保持", key: "Authorization", value: "Bearer NjM4ODc0NzE2MjQ0OmFiY2RlZmdo", expected: "Bearer ***MASKED***"},
		{name: "通常のキー", key: "project", value: "TST", expected: "TST"},
		{name: "部分一致はマスクしない", key: "author", value: "alice", expected: "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := SanitizeKeyValue(tt.key, tt.value)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeArgs(t *testing.T) {
	args := []interface{}{"project", "TST", "password", "secret", "dangling"}

	got := SanitizeArgs(args...)

	assert.Equal(t, []interface{}{"project", "TST", "password", "***MASKED***", "dangling"}, got)
	assert.Equal(t, "secret", args[3], "元の引数は変更しない")
}
