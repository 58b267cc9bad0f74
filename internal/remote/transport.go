package remote

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/douhashi/logira/internal/logger"
)

// bodyPreviewLimit はログに出すレスポンスボディの最大バイト数
const bodyPreviewLimit = 200

// loggingRoundTripper はHTTPリクエスト/レスポンスをログ出力するラウンドトリッパー
type loggingRoundTripper struct {
	base   http.RoundTripper
	logger logger.Logger
}

// RoundTrip はHTTPリクエストを実行し、リクエスト/レスポンスの詳細をログ出力する
func (rt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	rt.logRequest(req)

	resp, err := rt.base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		rt.logger.Debug("jira_api_error",
			"method", req.Method,
			"url", req.URL.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return nil, err
	}

	rt.logResponse(resp, duration)
	return resp, nil
}

// logRequest はHTTPリクエストの詳細をログ出力する
func (rt *loggingRoundTripper) logRequest(req *http.Request) {
	fields := []interface{}{
		"method", req.Method,
		"url", req.URL.String(),
	}

	if auth := req.Header.Get("Authorization"); auth != "" {
		fields = append(fields, "authorization", maskAuthHeader(auth))
	}
	if ua := req.Header.Get("User-Agent"); ua != "" {
		fields = append(fields, "user_agent", ua)
	}

	rt.logger.Debug("jira_api_request", fields...)
}

// logResponse はHTTPレスポンスの詳細をログ出力する
func (rt *loggingRoundTripper) logResponse(resp *http.Response, duration time.Duration) {
	fields := []interface{}{
		"status_code", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	}

	if resp.Body != nil {
		bodyBytes, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			rt.logger.Debug("failed_to_read_response_body", "error", err.Error())
		}
		// ボディを再設定
		resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		preview := string(bodyBytes)
		if len(preview) > bodyPreviewLimit {
			preview = preview[:bodyPreviewLimit] + "..."
		}
		fields = append(fields, "body_preview", preview)
	}

	rt.logger.Debug("jira_api_response", fields...)
}

// maskAuthHeader はAuthorizationヘッダーの値をマスキングする
func maskAuthHeader(auth string) string {
	if scheme, _, ok := strings.Cut(auth, " "); ok {
		return fmt.Sprintf("%s [REDACTED]", scheme)
	}
	return "[REDACTED]"
}
