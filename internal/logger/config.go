package logger

import (
	"os"
	"strings"
)

// ConfigFromEnv は環境変数から設定を読み込む
func ConfigFromEnv() *Config {
	config := &Config{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}

	// DEBUG環境変数のチェック
	if isTrue(os.Getenv("DEBUG")) {
		config.Level = "debug"
	}

	// LOG_LEVEL環境変数のチェック（DEBUGより優先）
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}

	if file := os.Getenv("LOG_FILE"); file != "" {
		config.Output = file
	}

	return config
}

// NewFromEnv は環境変数から設定を読み込んでロガーを作成する
//
// opts は環境変数の値を上書きする。
func NewFromEnv(opts ...Option) (Logger, error) {
	config := ConfigFromEnv()
	base := []Option{
		WithLevel(config.Level),
		WithFormat(config.Format),
		WithOutput(config.Output),
	}
	return New(append(base, opts...)...)
}

// isTrue は文字列がtrueを表すかチェックする
func isTrue(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
