// Package tracing configures OpenTelemetry tracing for outbound Jira calls.
package tracing

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

var (
	// ErrEndpointRequired is returned when tracing is enabled without an endpoint.
	ErrEndpointRequired = errors.New("tracing: endpoint is required when tracing is enabled")

	// ErrEndpointInvalid is returned when the endpoint is not a URL with a host.
	ErrEndpointInvalid = errors.New("tracing: endpoint must be a URL with a host (e.g. http://localhost:4318)")

	// ErrTimeoutInvalid is returned for a non-positive export timeout.
	ErrTimeoutInvalid = errors.New("tracing: timeout must be positive")

	// ErrSamplingRateInvalid is returned when the rate is outside [0, 1].
	ErrSamplingRateInvalid = errors.New("tracing: sampling rate must be between 0.0 and 1.0")
)

// Config はトレース出力の設定
type Config struct {
	Enabled      bool          `mapstructure:"enabled" yaml:"enabled"`
	Endpoint     string        `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	Insecure     bool          `mapstructure:"insecure" yaml:"insecure"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
	SamplingRate float64       `mapstructure:"sampling_rate" yaml:"sampling_rate"`
}

// DefaultConfig はトレース無効の設定を返す
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		Timeout:      5 * time.Second,
		SamplingRate: 1.0,
	}
}

// Validate は設定の妥当性を検証する。無効な場合は常に成功する。
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Endpoint == "" {
		return ErrEndpointRequired
	}
	if u, err := url.Parse(c.Endpoint); err != nil || u.Host == "" {
		return ErrEndpointInvalid
	}
	if c.Timeout <= 0 {
		return ErrTimeoutInvalid
	}
	if c.SamplingRate < 0.0 || c.SamplingRate > 1.0 {
		return fmt.Errorf("%w, got %g", ErrSamplingRateInvalid, c.SamplingRate)
	}
	return nil
}
