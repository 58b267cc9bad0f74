package jira

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacro_Render(t *testing.T) {
	tests := []struct {
		name     string
		macro    Macro
		expected string
	}{
		{
			name:     "タイトル付きコード",
			macro:    CodeMacro{Code: "some code", Title: "some title"},
			expected: "{code:title=some title}some code{code}",
		},
		{
			name:     "タイトルなしコード",
			macro:    CodeMacro{Code: "some code"},
			expected: "{code}some code{code}",
		},
		{
			name:     "引用",
			macro:    QuoteMacro{Quote: "some quote"},
			expected: "{quote}some quote{quote}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.macro.Render())
		})
	}
}
