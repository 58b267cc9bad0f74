package jira

import "context"

const browsePath = "/browse/"

// Issue は作成済みのJira課題を表す
type Issue struct {
	Key    string
	config *Configuration
}

// NewIssue はキーから課題を作成する。キーの書式は検証しない。
func NewIssue(cfg *Configuration, key string) *Issue {
	return &Issue{Key: key, config: cfg}
}

// URL は課題のブラウズURLを返す
//
// 構築時ではなく呼び出し時点の設定を参照する。
func (i *Issue) URL() string {
	var site string
	if i.config != nil {
		site = i.config.SiteURL()
	}
	return site + browsePath + i.Key
}

// String returns the issue key
func (i *Issue) String() string {
	return i.Key
}

// RemoteIssue is the validated field bag handed to the remote service.
type RemoteIssue struct {
	ProjectKey  string   `json:"project"`
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Environment string   `json:"environment,omitempty"`
	Components  []string `json:"components,omitempty"`
	IssueType   string   `json:"issuetype,omitempty"`
}

// RemoteIssueCreator submits a field bag to the issue tracker and returns the new issue key.
type RemoteIssueCreator interface {
	CreateIssue(ctx context.Context, issue *RemoteIssue) (string, error)
}

// RemoteIssueCreatorFunc adapts a function to RemoteIssueCreator
type RemoteIssueCreatorFunc func(ctx context.Context, issue *RemoteIssue) (string, error)

// CreateIssue calls f(ctx, issue)
func (f RemoteIssueCreatorFunc) CreateIssue(ctx context.Context, issue *RemoteIssue) (string, error) {
	return f(ctx, issue)
}
