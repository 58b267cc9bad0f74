package builders_test

import (
	"testing"

	"github.com/douhashi/logira/internal/jira"
	"github.com/douhashi/logira/internal/testutil/builders"
	"github.com/stretchr/testify/assert"
)

func TestConfigBuilder(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := builders.NewConfigBuilder().Build()

		assert.NoError(t, cfg.Validate())
		assert.Equal(t, "http://the-jira-site.com", cfg.Jira.SiteURL)
		assert.Equal(t, jira.DefaultIssueType, cfg.Jira.IssueType)
		assert.False(t, cfg.Jira.UseKeyring)
	})

	t.Run("custom jira config", func(t *testing.T) {
		cfg := builders.NewConfigBuilder().
			WithSiteURL("https://jira.example.com").
			WithToken("tok").
			WithMaxSummaryLength(10).
			WithIssueType("Task").
			Build()

		jc := cfg.JiraConfiguration()
		assert.Equal(t, "https://jira.example.com", jc.SiteURL())
		assert.Equal(t, "tok", jc.Token())
		assert.Equal(t, 10, jc.MaxSummaryLength())
		assert.Equal(t, "Task", jc.IssueType())
	})

	t.Run("keyring clears secrets", func(t *testing.T) {
		cfg := builders.NewConfigBuilder().WithToken("tok").WithKeyring().Build()

		assert.True(t, cfg.Jira.UseKeyring)
		assert.Empty(t, cfg.Jira.Token)
		assert.Empty(t, cfg.Jira.Password)
	})

	t.Run("build returns a copy", func(t *testing.T) {
		b := builders.NewConfigBuilder()
		cfg := b.Build()
		b.WithSiteURL("http://changed")

		assert.Equal(t, "http://the-jira-site.com", cfg.Jira.SiteURL)
	})
}
