package builders

import (
	"time"

	"github.com/douhashi/logira/internal/config"
)

// ConfigBuilder builds config.Config instances for testing
type ConfigBuilder struct {
	cfg *config.Config
}

// NewConfigBuilder creates a new ConfigBuilder with sensible defaults
func NewConfigBuilder() *ConfigBuilder {
	cfg := config.NewConfig()
	cfg.Jira.SiteURL = "http://the-jira-site.com"
	cfg.Jira.Username = "user"
	cfg.Jira.Password = "pass"
	cfg.Jira.Timeout = 5 * time.Second
	return &ConfigBuilder{cfg: cfg}
}

// WithSiteURL sets the Jira site URL
func (b *ConfigBuilder) WithSiteURL(siteURL string) *ConfigBuilder {
	b.cfg.Jira.SiteURL = siteURL
	return b
}

// WithCredentials sets the username and password
func (b *ConfigBuilder) WithCredentials(username, password string) *ConfigBuilder {
	b.cfg.Jira.Username = username
	b.cfg.Jira.Password = password
	return b
}

// WithToken sets the API token
func (b *ConfigBuilder) WithToken(token string) *ConfigBuilder {
	b.cfg.Jira.Token = token
	return b
}

// WithMaxSummaryLength sets the summary length limit
func (b *ConfigBuilder) WithMaxSummaryLength(n int) *ConfigBuilder {
	b.cfg.Jira.MaxSummaryLength = n
	return b
}

// WithIssueType sets the issue type name
func (b *ConfigBuilder) WithIssueType(name string) *ConfigBuilder {
	b.cfg.Jira.IssueType = name
	return b
}

// WithKeyring enables keyring lookup and clears stored secrets
func (b *ConfigBuilder) WithKeyring() *ConfigBuilder {
	b.cfg.Jira.UseKeyring = true
	b.cfg.Jira.Password = ""
	b.cfg.Jira.Token = ""
	return b
}

// WithMetrics enables metrics, optionally written to textfile
func (b *ConfigBuilder) WithMetrics(textfile string) *ConfigBuilder {
	b.cfg.Metrics.Enabled = true
	b.cfg.Metrics.Textfile = textfile
	return b
}

// Build returns the constructed Config
func (b *ConfigBuilder) Build() *config.Config {
	// Return a copy to prevent external modification
	cfgCopy := *b.cfg
	return &cfgCopy
}
