package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestEnv はHOMEと環境変数をテスト用に隔離する
func setupTestEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"JIRA_URL", "JIRA_USER", "JIRA_PASSWORD", "JIRA_TOKEN",
		"LOGIRA_JIRA_SITE_URL", "LOGIRA_JIRA_USERNAME", "LOGIRA_JIRA_PASSWORD", "LOGIRA_JIRA_TOKEN",
		"LOGIRA_JIRA_USE_KEYRING", "LOGIRA_METRICS_ENABLED", "LOGIRA_METRICS_TEXTFILE",
		"LOGIRA_TRACING_ENABLED", "LOGIRA_TRACING_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE", "DEBUG",
	} {
		t.Setenv(key, "")
	}
	return home
}

// writeConfig は設定ファイルを作成してパスを返す
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "logira.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// executeCommand は新しいルートコマンドを実行して出力を返す
func executeCommand(stdin string, args ...string) (string, error) {
	buf := new(bytes.Buffer)

	rootCmd = NewRootCmd()
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
