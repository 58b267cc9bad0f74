package jira

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssue_URL(t *testing.T) {
	t.Run("正常系: 設定したサイトURLからブラウズURLを作る", func(t *testing.T) {
		cfg := NewConfiguration()
		issue := NewIssue(cfg, "TST-123")

		jiraURL := "http://the-jira-site.com"
		cfg.Configure(jiraURL, "user", "pass")

		assert.Equal(t, jiraURL+"/browse/"+issue.Key, issue.URL())
	})

	t.Run("正常系: 設定の変更はアクセス時に反映される", func(t *testing.T) {
		cfg := NewConfiguration()
		cfg.Configure("http://old.example.com", "user", "pass")
		issue := NewIssue(cfg, "TST-1")
		assert.Equal(t, "http://old.example.com/browse/TST-1", issue.URL())

		cfg.Configure("http://new.example.com", "user", "pass")
		assert.Equal(t, "http://new.example.com/browse/TST-1", issue.URL())
	})

	t.Run("正常系: キーの書式は検証しない", func(t *testing.T) {
		issue := NewIssue(nil, "not a key")
		assert.Equal(t, "/browse/not a key", issue.URL())
	})
}

func TestConfiguration(t *testing.T) {
	cfg := NewConfiguration()
	assert.Equal(t, 0, cfg.MaxSummaryLength())
	assert.Equal(t, DefaultIssueType, cfg.IssueType())

	cfg.Configure("http://a", "u1", "p1")
	cfg.Configure("http://b", "u2", "p2")
	cfg.SetMaxSummaryLength(255)
	cfg.SetToken("pat")
	cfg.SetIssueType("Task")

	assert.Equal(t, "http://b", cfg.SiteURL())
	assert.Equal(t, "u2", cfg.Username())
	assert.Equal(t, "p2", cfg.Password())
	assert.Equal(t, 255, cfg.MaxSummaryLength())
	assert.Equal(t, "pat", cfg.Token())
	assert.Equal(t, "Task", cfg.IssueType())

	cfg.SetIssueType("")
	assert.Equal(t, DefaultIssueType, cfg.IssueType())
}
