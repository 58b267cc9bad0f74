package tracing

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/douhashi/logira/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

// このファイルのテストはグローバルなTracerProviderを変更するためt.Parallel()を使わない

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.Enabled = true
		cfg.Endpoint = "http://localhost:4318"
		return cfg
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "正常系: 有効な設定", modify: func(*Config) {}},
		{name: "正常系: 無効なら検証しない", modify: func(c *Config) { c.Enabled = false; c.Endpoint = "" }},
		{name: "異常系: エンドポイントなし", modify: func(c *Config) { c.Endpoint = "" }, wantErr: ErrEndpointRequired},
		{name: "異常系: ホストなし", modify: func(c *Config) { c.Endpoint = "localhost" }, wantErr: ErrEndpointInvalid},
		{name: "異常系: タイムアウト0", modify: func(c *Config) { c.Timeout = 0 }, wantErr: ErrTimeoutInvalid},
		{name: "異常系: サンプリング率が範囲外", modify: func(c *Config) { c.SamplingRate = 1.5 }, wantErr: ErrSamplingRateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(DefaultConfig(), logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	shutdown, err := Setup(cfg, logger.Nop())

	assert.ErrorIs(t, err, ErrEndpointRequired)
	assert.Nil(t, shutdown)
}

func TestSetup_ExportsSpans(t *testing.T) {
	var exported atomic.Int32
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		if r.URL.Path == "/v1/traces" {
			exported.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	orig := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(orig) })

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = collector.URL
	cfg.Insecure = true
	cfg.Timeout = 2 * time.Second

	shutdown, err := Setup(cfg, logger.Nop())
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "jira.CreateIssue")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Equal(t, int32(1), exported.Load())
}
