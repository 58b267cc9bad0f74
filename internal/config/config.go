package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/douhashi/logira/internal/jira"
	"github.com/douhashi/logira/internal/paths"
	"github.com/douhashi/logira/internal/tracing"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定
type Config struct {
	Jira    JiraConfig     `mapstructure:"jira" yaml:"jira"`
	Log     LogConfig      `mapstructure:"log" yaml:"log"`
	Metrics MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
	Tracing tracing.Config `mapstructure:"tracing" yaml:"tracing"`
}

// JiraConfig はJira接続の設定
type JiraConfig struct {
	SiteURL          string        `mapstructure:"site_url" yaml:"site_url"`
	Username         string        `mapstructure:"username" yaml:"username"`
	Password         string        `mapstructure:"password" yaml:"password,omitempty"`
	Token            string        `mapstructure:"token" yaml:"token,omitempty"`
	MaxSummaryLength int           `mapstructure:"max_summary_length" yaml:"max_summary_length"`
	IssueType        string        `mapstructure:"issue_type" yaml:"issue_type"`
	Timeout          time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UseKeyring       bool          `mapstructure:"use_keyring" yaml:"use_keyring"`
}

// LogConfig はログ出力の設定
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file,omitempty"`
}

// MetricsConfig はメトリクスの設定
type MetricsConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Textfile string `mapstructure:"textfile" yaml:"textfile,omitempty"`
}

const (
	defaultMaxSummaryLength = 255
	defaultTimeout          = 30 * time.Second
)

// 設定ファイルの探索候補（カレントディレクトリ）
var localConfigFiles = []string{".logira.yml", ".logira.yaml"}

// NewConfig は新しいConfigを作成する
func NewConfig() *Config {
	return &Config{
		Jira: JiraConfig{
			MaxSummaryLength: defaultMaxSummaryLength,
			IssueType:        jira.DefaultIssueType,
			Timeout:          defaultTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// DefaultConfigPath はユーザー設定ファイルのパスを返す
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return paths.NewPathManager(home).ConfigFile(), nil
}

// newViper は環境変数とデフォルト値を設定したviperを作成する
func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("LOGIRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 慣例的な環境変数もサポート
	_ = v.BindEnv("jira.site_url", "LOGIRA_JIRA_SITE_URL", "JIRA_URL")
	_ = v.BindEnv("jira.username", "LOGIRA_JIRA_USERNAME", "JIRA_USER")
	_ = v.BindEnv("jira.password", "LOGIRA_JIRA_PASSWORD", "JIRA_PASSWORD")
	_ = v.BindEnv("jira.token", "LOGIRA_JIRA_TOKEN", "JIRA_TOKEN")

	v.SetDefault("jira.max_summary_length", defaultMaxSummaryLength)
	v.SetDefault("jira.issue_type", jira.DefaultIssueType)
	v.SetDefault("jira.timeout", defaultTimeout)
	v.SetDefault("jira.use_keyring", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.textfile", "")

	tc := tracing.DefaultConfig()
	_ = v.BindEnv("tracing.endpoint", "LOGIRA_TRACING_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.SetDefault("tracing.enabled", tc.Enabled)
	v.SetDefault("tracing.insecure", tc.Insecure)
	v.SetDefault("tracing.timeout", tc.Timeout)
	v.SetDefault("tracing.sampling_rate", tc.SamplingRate)

	return v
}

// Load は設定ファイルから設定を読み込む
func (c *Config) Load(configPath string) error {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(c)
}

// LoadFromEnv は環境変数とデフォルト値だけで設定を組み立てる
func (c *Config) LoadFromEnv() error {
	return newViper().Unmarshal(c)
}

// LoadOrDefault は設定ファイルを読み込み、実際に読み込んだパスを返す
//
// configPath が空の場合はカレントディレクトリ、ユーザー設定の順に探す。
// 見つからない場合や読み込みに失敗した場合は環境変数とデフォルト値を使い、空文字列を返す。
func (c *Config) LoadOrDefault(configPath string) string {
	candidates := []string{configPath}
	if configPath == "" {
		candidates = append([]string{}, localConfigFiles...)
		if p, err := DefaultConfigPath(); err == nil {
			candidates = append(candidates, p)
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := c.Load(path); err == nil {
			return path
		}
	}

	_ = c.LoadFromEnv()
	return ""
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Jira.SiteURL == "" {
		return errors.New("jira site_url is required")
	}
	u, err := url.Parse(c.Jira.SiteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("jira site_url is invalid: %q", c.Jira.SiteURL)
	}
	if c.Jira.MaxSummaryLength < 0 {
		return errors.New("jira max_summary_length must not be negative")
	}
	if c.Jira.Timeout < 0 {
		return errors.New("jira timeout must not be negative")
	}

	if err := c.Tracing.Validate(); err != nil {
		return err
	}

	// 課題タイプが空の場合はデフォルト値を設定
	if c.Jira.IssueType == "" {
		c.Jira.IssueType = jira.DefaultIssueType
	}

	return nil
}

// JiraConfiguration は接続設定をjira.Configurationに変換する
func (c *Config) JiraConfiguration() *jira.Configuration {
	cfg := jira.NewConfiguration()
	cfg.Configure(c.Jira.SiteURL, c.Jira.Username, c.Jira.Password)
	cfg.SetMaxSummaryLength(c.Jira.MaxSummaryLength)
	cfg.SetToken(c.Jira.Token)
	cfg.SetIssueType(c.Jira.IssueType)
	return cfg
}

// Save は設定をYAMLファイルに書き出す
//
// 認証情報を含みうるためファイルは所有者のみ読み書き可能にする。
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
