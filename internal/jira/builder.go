// Package jira builds and submits Jira issues.
//
// An IssueBuilder accumulates the fields of a single issue, validates them and
// hands the resulting RemoteIssue to a RemoteIssueCreator:
//
//	cfg := jira.NewConfiguration()
//	cfg.Configure("https://jira.example.com", "user", "pass")
//	issue, err := jira.NewIssueBuilder(cfg, creator).
//	    Project("TST").
//	    Summary("nightly import failed").
//	    DescriptionError(err).
//	    EnvironmentFromServer().
//	    Create(ctx)
//
// A builder is owned by one caller; it is not safe for concurrent use.
package jira

import (
	"context"
	"strings"
)

const descriptionSeparator = "\n\n"

// IssueBuilder は1件の課題のフィールドを蓄積する
type IssueBuilder struct {
	config  *Configuration
	creator RemoteIssueCreator

	project      string
	summary      string
	environment  string
	descriptions []string
	components   []string
}

// NewIssueBuilder は新しいIssueBuilderを作成する
func NewIssueBuilder(cfg *Configuration, creator RemoteIssueCreator) *IssueBuilder {
	if cfg == nil {
		cfg = NewConfiguration()
	}
	return &IssueBuilder{
		config:  cfg,
		creator: creator,
	}
}

// Project はプロジェクトキーを設定する
func (b *IssueBuilder) Project(key string) *IssueBuilder {
	b.project = key
	return b
}

// Summary はサマリーを設定する
func (b *IssueBuilder) Summary(text string) *IssueBuilder {
	b.summary = text
	return b
}

// Environment は環境を設定する。空文字列で未設定に戻る。
func (b *IssueBuilder) Environment(text string) *IssueBuilder {
	b.environment = text
	return b
}

// EnvironmentFromServer はホストの実行時情報を環境に設定する
func (b *IssueBuilder) EnvironmentFromServer() *IssueBuilder {
	b.environment = serverEnvironment()
	return b
}

// Description は説明文に追記する
func (b *IssueBuilder) Description(text string) *IssueBuilder {
	b.descriptions = append(b.descriptions, text)
	return b
}

// DescriptionError はエラーとその原因チェーンを説明文に追記する
func (b *IssueBuilder) DescriptionError(err error) *IssueBuilder {
	if err == nil {
		return b
	}
	return b.Description(renderErrorChain(err))
}

// DescriptionMacro はマクロを描画して説明文に追記する
func (b *IssueBuilder) DescriptionMacro(m Macro) *IssueBuilder {
	if m == nil {
		return b
	}
	return b.Description(m.Render())
}

// Component はコンポーネント名を追加する。重複は許可される。
func (b *IssueBuilder) Component(name string) *IssueBuilder {
	b.components = append(b.components, name)
	return b
}

// CreateRemoteIssue は必須項目を検証し、送信用のフィールドを組み立てる
//
// ネットワーク呼び出しは行わない。ビルダー自身の状態は変更しない。
func (b *IssueBuilder) CreateRemoteIssue() (*RemoteIssue, error) {
	if b.project == "" {
		return nil, &ValidationError{Field: "Project"}
	}
	if b.summary == "" {
		return nil, &ValidationError{Field: "Summary"}
	}

	descriptions := append([]string(nil), b.descriptions...)
	summary := b.summary
	if truncated, ok := truncate(summary, b.config.MaxSummaryLength()); ok {
		descriptions = append(descriptions, summary)
		summary = truncated
	}

	var components []string
	if len(b.components) > 0 {
		components = append([]string(nil), b.components...)
	}

	return &RemoteIssue{
		ProjectKey:  b.project,
		Summary:     summary,
		Description: strings.Join(descriptions, descriptionSeparator),
		Environment: b.environment,
		Components:  components,
		IssueType:   b.config.IssueType(),
	}, nil
}

// Create は課題を組み立ててリモートに送信する
//
// リモート呼び出しのエラーはそのまま返す。
func (b *IssueBuilder) Create(ctx context.Context) (*Issue, error) {
	remote, err := b.CreateRemoteIssue()
	if err != nil {
		return nil, err
	}
	if b.creator == nil {
		return nil, ErrNoCreator
	}

	key, err := b.creator.CreateIssue(ctx, remote)
	if err != nil {
		return nil, err
	}
	return NewIssue(b.config, key), nil
}

// CreateRemoteComponents always fails: the remote service has no
// component-creation operation, so callers must not retry.
func (b *IssueBuilder) CreateRemoteComponents(ctx context.Context) error {
	return &NotSupportedError{Operation: "component creation"}
}

// truncate cuts s to limit runes. ok is false when s already fits or limit is unset.
func truncate(s string, limit int) (string, bool) {
	if limit <= 0 {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}
