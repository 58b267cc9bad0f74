package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLCmd(t *testing.T) {
	setupTestEnv(t)

	t.Run("正常系: 課題のURLを表示", func(t *testing.T) {
		path := writeConfig(t, "jira:\n  site_url: http://the-jira-site.com\n")

		output, err := executeCommand("", "--config", path, "url", "TST-12")
		require.NoError(t, err)

		assert.Equal(t, "http://the-jira-site.com/browse/TST-12\n", output)
	})

	t.Run("正常系: 環境変数のサイトURLを使う", func(t *testing.T) {
		t.Setenv("JIRA_URL", "https://jira.example.com")

		output, err := executeCommand("", "url", "ABC-1")
		require.NoError(t, err)

		assert.Equal(t, "https://jira.example.com/browse/ABC-1\n", output)
	})

	t.Run("異常系: サイトURL未設定", func(t *testing.T) {
		_, err := executeCommand("", "url", "TST-1")
		assert.Error(t, err)
	})

	t.Run("異常系: 引数なし", func(t *testing.T) {
		_, err := executeCommand("", "url")
		assert.Error(t, err)
	})
}
