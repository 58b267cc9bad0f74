package cmd

import (
	"errors"
	"fmt"

	"github.com/douhashi/logira/internal/jira"
	"github.com/spf13/cobra"
)

func newURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url KEY",
		Short: "課題のURLを表示",
		Long:  `課題キーからブラウザで開くURLを表示します。`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCfg.Jira.SiteURL == "" {
				return errors.New("jira site_url is not configured")
			}
			issue := jira.NewIssue(appCfg.JiraConfiguration(), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), issue.URL())
			return nil
		},
	}
}
