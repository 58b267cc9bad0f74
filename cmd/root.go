package cmd

import (
	"fmt"
	"os"

	"github.com/douhashi/logira/internal/config"
	"github.com/douhashi/logira/internal/logger"
	"github.com/douhashi/logira/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
	rootCmd  *cobra.Command
	appLog   logger.Logger
	appCfg   *config.Config
)

func init() {
	rootCmd = NewRootCmd()
}

func addCommands(cmd *cobra.Command) {
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newURLCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newComponentsCmd())
}

// NewRootCmd creates a new root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	addCommands(cmd)
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logira",
		Short: "Jira課題登録ツール",
		Long: `logiraは、エラーやログからJiraの課題を登録するCLIツールです。
長すぎるサマリーは切り詰められ、全文は説明文に追記されます。`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 設定ファイルを先に読み込む
			appCfg = config.NewConfig()
			if path := appCfg.LoadOrDefault(cfgFile); path == "" && cfgFile != "" {
				return fmt.Errorf("failed to load config file: %s", cfgFile)
			}

			// ロガーの初期化
			var err error
			appLog, err = newAppLogger(appCfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "設定ファイルのパス")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "詳細出力")
	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "ログレベル (debug, info, warn, error)")

	return cmd
}

// newAppLogger は環境変数、設定ファイル、フラグの順に優先度を上げてロガーを作成する
func newAppLogger(cfg *config.Config) (logger.Logger, error) {
	var opts []logger.Option

	if os.Getenv("LOG_LEVEL") == "" && os.Getenv("DEBUG") == "" && cfg.Log.Level != "" {
		opts = append(opts, logger.WithLevel(cfg.Log.Level))
	}
	if os.Getenv("LOG_FORMAT") == "" && cfg.Log.Format != "" {
		opts = append(opts, logger.WithFormat(cfg.Log.Format))
	}
	if os.Getenv("LOG_FILE") == "" && cfg.Log.File != "" {
		opts = append(opts, logger.WithOutput(cfg.Log.File))
	}

	switch {
	case logLevel != "":
		opts = append(opts, logger.WithLevel(logLevel))
	case verbose:
		opts = append(opts, logger.WithLevel("debug"))
	}

	return logger.NewFromEnv(opts...)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
