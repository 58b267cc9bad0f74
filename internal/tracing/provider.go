package tracing

import (
	"context"
	"net/url"

	"github.com/douhashi/logira/internal/logger"
	"github.com/douhashi/logira/internal/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const serviceName = "logira"

// ShutdownFunc はバッファされたスパンを送信して終了する
type ShutdownFunc func(context.Context) error

func nopShutdown(context.Context) error { return nil }

// Setup はOTLP HTTPエクスポーターを使うTracerProviderをグローバルに登録する
//
// 無効な場合は何もせず、何もしないShutdownFuncを返す。
func Setup(cfg Config, log logger.Logger) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return nopShutdown, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tp, err := newTracerProvider(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)

	log.Debug("Tracing initialized",
		"endpoint", cfg.Endpoint,
		"sampling_rate", cfg.SamplingRate,
	)
	return tp.Shutdown, nil
}

func newTracerProvider(ctx context.Context, cfg Config) (*sdktrace.TracerProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version.Get().Version),
		),
	)
	if err != nil {
		return nil, err
	}

	// WithEndpointはhost:portのみを受け付ける
	endpoint := cfg.Endpoint
	if u, err := url.Parse(cfg.Endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithTimeout(cfg.Timeout),
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	), nil
}
