package jira

// Configuration はJiraサイトへの接続設定を保持する
//
// プロセス起動時に一度だけ Configure を呼び、その後は各コンストラクタへ
// 同じポインタを渡して共有する。並行な変更は保護されていないため、
// 複数のゴルーチンから変更する場合は呼び出し側で同期すること。
type Configuration struct {
	siteURL          string
	username         string
	password         string
	token            string
	maxSummaryLength int
	issueType        string
}

// DefaultIssueType は課題タイプが未設定の場合に使われる
const DefaultIssueType = "Bug"

// NewConfiguration は空の設定を作成する
func NewConfiguration() *Configuration {
	return &Configuration{issueType: DefaultIssueType}
}

// Configure は接続情報を上書きする
func (c *Configuration) Configure(siteURL, username, password string) {
	c.siteURL = siteURL
	c.username = username
	c.password = password
}

// SetMaxSummaryLength はサマリーの最大文字数を設定する（0以下は無制限）
func (c *Configuration) SetMaxSummaryLength(n int) {
	c.maxSummaryLength = n
}

// SetToken はBearer認証用のパーソナルアクセストークンを設定する
func (c *Configuration) SetToken(token string) {
	c.token = token
}

// SetIssueType は作成する課題のタイプ名を設定する
func (c *Configuration) SetIssueType(name string) {
	c.issueType = name
}

// SiteURL returns the configured site base URL
func (c *Configuration) SiteURL() string { return c.siteURL }

// Username returns the configured user name
func (c *Configuration) Username() string { return c.username }

// Password returns the configured password
func (c *Configuration) Password() string { return c.password }

// Token returns the configured personal access token
func (c *Configuration) Token() string { return c.token }

// MaxSummaryLength returns the summary limit; values <= 0 mean unbounded
func (c *Configuration) MaxSummaryLength() int { return c.maxSummaryLength }

// IssueType returns the issue type name used for new issues
func (c *Configuration) IssueType() string {
	if c.issueType == "" {
		return DefaultIssueType
	}
	return c.issueType
}
