package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/douhashi/logira/internal/config"
	"github.com/douhashi/logira/internal/credential"
	"github.com/douhashi/logira/internal/paths"
	"github.com/spf13/cobra"
)

type initOptions struct {
	path             string
	siteURL          string
	username         string
	issueType        string
	maxSummaryLength int
	tokenStdin       bool
	useKeyring       bool
	logToFile        bool
	metrics          bool
	force            bool
}

// モック用の関数変数
var (
	statFunc              = os.Stat
	defaultConfigPathFunc = config.DefaultConfigPath
	newPathManagerFunc    = paths.NewPathManager
)

func newInitCmd() *cobra.Command {
	o := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "設定ファイルを作成",
		Long: `logiraの設定ファイルを作成します。
--token-stdinでAPIトークンを標準入力から読み込み、--use-keyringを指定するとOSのキーリングに保存します。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, o)
		},
	}

	cmd.Flags().StringVar(&o.path, "path", "", "作成する設定ファイルのパス（デフォルト: ~/.config/logira/logira.yml）")
	cmd.Flags().StringVar(&o.siteURL, "site-url", "", "JiraサイトのURL")
	cmd.Flags().StringVarP(&o.username, "username", "u", "", "Jiraのユーザー名")
	cmd.Flags().StringVar(&o.issueType, "issue-type", "", "課題タイプ")
	cmd.Flags().IntVar(&o.maxSummaryLength, "max-summary-length", -1, "サマリーの最大長（0で無制限）")
	cmd.Flags().BoolVar(&o.tokenStdin, "token-stdin", false, "APIトークンを標準入力から読み込む")
	cmd.Flags().BoolVar(&o.useKeyring, "use-keyring", false, "認証情報をOSのキーリングに保存する")
	cmd.Flags().BoolVar(&o.logToFile, "log-to-file", false, "ログを~/.local/share/logira/logsに出力する")
	cmd.Flags().BoolVar(&o.metrics, "metrics", false, "メトリクスを~/.local/share/logira/metricsに出力する")
	cmd.Flags().BoolVarP(&o.force, "force", "f", false, "既存の設定ファイルを上書きする")

	return cmd
}

func runInit(cmd *cobra.Command, o *initOptions) error {
	out := cmd.OutOrStdout()

	path := o.path
	if path == "" {
		p, err := defaultConfigPathFunc()
		if err != nil {
			return err
		}
		path = p
	}

	if _, err := statFunc(path); err == nil && !o.force {
		return fmt.Errorf("設定ファイルが既に存在します: %s (--forceで上書き)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to access config file: %w", err)
	}

	cfg := config.NewConfig()
	cfg.Jira.SiteURL = o.siteURL
	cfg.Jira.Username = o.username
	cfg.Jira.UseKeyring = o.useKeyring
	if o.issueType != "" {
		cfg.Jira.IssueType = o.issueType
	}
	if o.maxSummaryLength >= 0 {
		cfg.Jira.MaxSummaryLength = o.maxSummaryLength
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if o.logToFile || o.metrics {
		pm := newPathManagerFunc("")
		if err := pm.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create data directories: %w", err)
		}
		if o.logToFile {
			cfg.Log.File = pm.LogFile()
		}
		if o.metrics {
			cfg.Metrics.Enabled = true
			cfg.Metrics.Textfile = pm.MetricsTextfile()
		}
	}

	if o.tokenStdin {
		token, err := readSecret(cmd.InOrStdin())
		if err != nil {
			return err
		}
		if o.useKeyring {
			store, err := openCredentialStoreFunc()
			if err != nil {
				return err
			}
			if err := store.Set(credential.TokenKey, token); err != nil {
				return err
			}
			fmt.Fprintln(out, "APIトークンをキーリングに保存しました")
		} else {
			cfg.Jira.Token = token
		}
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Fprintf(out, "設定ファイルを作成しました: %s\n", path)
	return nil
}

// readSecret は標準入力の最初の行を読み込む
func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	secret := strings.TrimSpace(line)
	if secret == "" {
		return "", errors.New("token is empty")
	}
	return secret, nil
}
