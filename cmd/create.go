package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/douhashi/logira/internal/jira"
	"github.com/douhashi/logira/internal/tracing"
	"github.com/spf13/cobra"
)

type createOptions struct {
	project     string
	summary     string
	description string
	environment string
	serverEnv   bool
	components  []string
	codeFile    string
	codeTitle   string
	quote       string
	dryRun      bool
}

func newCreateCmd() *cobra.Command {
	o := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "課題を作成",
		Long: `Jiraに課題を作成します。
作成された課題のキーとURLを出力します。--dry-runでは送信内容をJSONで出力します。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, o)
		},
	}

	cmd.Flags().StringVarP(&o.project, "project", "p", "", "プロジェクトキー")
	cmd.Flags().StringVarP(&o.summary, "summary", "s", "", "サマリー")
	cmd.Flags().StringVarP(&o.description, "description", "d", "", "説明文")
	cmd.Flags().StringVarP(&o.environment, "environment", "e", "", "環境")
	cmd.Flags().BoolVar(&o.serverEnv, "server-env", false, "実行中のホスト情報を環境に設定")
	cmd.Flags().StringArrayVar(&o.components, "component", nil, "コンポーネント名（複数指定可）")
	cmd.Flags().StringVar(&o.codeFile, "code", "", "説明文に添付するコードのファイル（-で標準入力）")
	cmd.Flags().StringVar(&o.codeTitle, "code-title", "", "コードブロックのタイトル")
	cmd.Flags().StringVar(&o.quote, "quote", "", "説明文に添付する引用")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "送信せずに内容を表示")
	cmd.MarkFlagsMutuallyExclusive("environment", "server-env")

	return cmd
}

func runCreate(cmd *cobra.Command, o *createOptions) error {
	out := cmd.OutOrStdout()
	jc := appCfg.JiraConfiguration()

	if o.dryRun {
		builder, err := newBuilder(jc, nil, o, cmd.InOrStdin())
		if err != nil {
			return err
		}
		remoteIssue, err := builder.CreateRemoteIssue()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(remoteIssue)
	}

	if err := appCfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	shutdown, err := tracing.Setup(appCfg.Tracing, appLog)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			appLog.Warn("Failed to flush traces", "error", err)
		}
	}()

	creator, collector, err := newRemoteCreatorFunc(appCfg, jc, appLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := collector.Flush(); err != nil {
			appLog.Warn("Failed to flush metrics", "error", err)
		}
	}()

	builder, err := newBuilder(jc, creator, o, cmd.InOrStdin())
	if err != nil {
		return err
	}

	issue, err := builder.Create(cmd.Context())
	if err != nil {
		appLog.Error("Failed to create issue", "project", o.project, "error", err)
		return fmt.Errorf("課題の作成に失敗しました: %w", err)
	}

	appLog.Info("Issue created", "project", o.project, "key", issue.Key)
	fmt.Fprintln(out, issue.Key)
	fmt.Fprintln(out, issue.URL())
	return nil
}

// newBuilder はフラグの内容をIssueBuilderに設定する
func newBuilder(jc *jira.Configuration, creator jira.RemoteIssueCreator, o *createOptions, stdin io.Reader) (*jira.IssueBuilder, error) {
	b := jira.NewIssueBuilder(jc, creator).
		Project(o.project).
		Summary(o.summary)

	if o.serverEnv {
		b.EnvironmentFromServer()
	} else {
		b.Environment(o.environment)
	}

	if o.description != "" {
		b.Description(o.description)
	}
	if o.codeFile != "" {
		code, err := readCode(o.codeFile, stdin)
		if err != nil {
			return nil, err
		}
		b.DescriptionMacro(jira.CodeMacro{Code: code, Title: o.codeTitle})
	}
	if o.quote != "" {
		b.DescriptionMacro(jira.QuoteMacro{Quote: o.quote})
	}

	for _, c := range o.components {
		b.Component(c)
	}
	return b, nil
}

func readCode(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read code: %w", err)
	}
	return string(data), nil
}
