package cmd

import (
	"fmt"

	"github.com/douhashi/logira/internal/jira"
	"github.com/spf13/cobra"
)

func newComponentsCmd() *cobra.Command {
	var (
		project    string
		components []string
	)

	cmd := &cobra.Command{
		Use:   "components",
		Short: "コンポーネントを作成",
		Long: `プロジェクトにコンポーネントを作成します。
Jiraのリモートサービスはコンポーネント作成をサポートしていないため、常に失敗します。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := jira.NewIssueBuilder(appCfg.JiraConfiguration(), nil).Project(project)
			for _, c := range components {
				b.Component(c)
			}

			if err := b.CreateRemoteComponents(cmd.Context()); err != nil {
				return fmt.Errorf("コンポーネントを作成できません: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "プロジェクトキー")
	cmd.Flags().StringArrayVar(&components, "component", nil, "コンポーネント名（複数指定可）")

	return cmd
}
