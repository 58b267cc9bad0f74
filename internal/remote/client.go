// Package remote submits issues to a Jira server over the REST API v2.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/douhashi/logira/internal/jira"
	"github.com/douhashi/logira/internal/logger"
	"github.com/douhashi/logira/internal/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

const (
	createIssuePath = "/rest/api/2/issue"
	tracerName      = "github.com/douhashi/logira/internal/remote"
	defaultTimeout  = 30 * time.Second
)

// Client はJira REST APIクライアント
type Client struct {
	httpClient *http.Client
	config     *jira.Configuration
	logger     logger.Logger
	tracer     trace.Tracer
}

// Option はClientの設定オプション
type Option func(*clientOptions)

type clientOptions struct {
	httpClient     *http.Client
	timeout        time.Duration
	logger         logger.Logger
	tracerProvider trace.TracerProvider
}

// WithHTTPClient は基になるHTTPクライアントを設定する
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithTimeout はリクエストのタイムアウトを設定する
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithLogger はHTTPのデバッグログを出力するロガーを設定する
func WithLogger(l logger.Logger) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithTracerProvider はトレースの出力先を設定する
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *clientOptions) {
		o.tracerProvider = tp
	}
}

// NewClient は新しいJira APIクライアントを作成する
//
// トークンが設定されていればBearer認証、なければユーザー名とパスワードでBasic認証を行う。
func NewClient(cfg *jira.Configuration, opts ...Option) (*Client, error) {
	if cfg == nil || cfg.SiteURL() == "" {
		return nil, errors.New("jira site URL is required")
	}

	o := &clientOptions{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Nop()
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}

	base := http.DefaultTransport
	if o.httpClient != nil && o.httpClient.Transport != nil {
		base = o.httpClient.Transport
	}

	var transport http.RoundTripper = &loggingRoundTripper{base: base, logger: o.logger}
	if token := cfg.Token(); token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   transport,
		}
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   o.timeout,
		},
		config: cfg,
		logger: o.logger,
		tracer: o.tracerProvider.Tracer(tracerName),
	}, nil
}

// CreateIssue は課題を作成し、作成された課題のキーを返す
//
// 失敗はすべて *jira.TransportError として返す。リトライは行わない。
func (c *Client) CreateIssue(ctx context.Context, issue *jira.RemoteIssue) (string, error) {
	ctx, span := c.tracer.Start(ctx, "jira.CreateIssue",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("jira.project", issue.ProjectKey),
			attribute.String("jira.issue_type", issue.IssueType),
			attribute.Int("jira.components", len(issue.Components)),
		),
	)
	defer span.End()

	key, err := c.createIssue(ctx, issue)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	span.SetAttributes(attribute.String("jira.issue_key", key))
	c.logger.Debug("jira_issue_created", "project", issue.ProjectKey, "key", key)
	return key, nil
}

func (c *Client) createIssue(ctx context.Context, issue *jira.RemoteIssue) (string, error) {
	body, err := json.Marshal(newCreateIssueRequest(issue))
	if err != nil {
		return "", &jira.TransportError{Message: "failed to encode issue", OriginalErr: err}
	}

	url := strings.TrimRight(c.config.SiteURL(), "/") + createIssuePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &jira.TransportError{Message: "failed to build request", OriginalErr: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "logira/"+version.Get().Version)
	if c.config.Token() == "" && c.config.Username() != "" {
		req.SetBasicAuth(c.config.Username(), c.config.Password())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &jira.TransportError{Message: fmt.Sprintf("POST %s failed", createIssuePath), OriginalErr: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &jira.TransportError{StatusCode: resp.StatusCode, Message: "failed to read response", OriginalErr: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newStatusError(resp, respBody)
	}

	var created createdIssue
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", &jira.TransportError{StatusCode: resp.StatusCode, Message: "failed to decode created issue", OriginalErr: err}
	}
	if created.Key == "" {
		return "", &jira.TransportError{StatusCode: resp.StatusCode, Message: "response has no issue key"}
	}
	return created.Key, nil
}

// newStatusError builds a TransportError from a non-2xx response.
func newStatusError(resp *http.Response, body []byte) *jira.TransportError {
	var jiraErr errorResponse
	if json.Unmarshal(body, &jiraErr) == nil {
		if msg := jiraErr.message(); msg != "" {
			return &jira.TransportError{StatusCode: resp.StatusCode, Message: msg}
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = resp.Status
	}
	if len(msg) > bodyPreviewLimit {
		msg = msg[:bodyPreviewLimit] + "..."
	}
	return &jira.TransportError{StatusCode: resp.StatusCode, Message: msg}
}

// Ensure Client implements jira.RemoteIssueCreator interface
var _ jira.RemoteIssueCreator = (*Client)(nil)
