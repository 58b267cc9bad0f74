// Package builders provides test data builders using the builder pattern for creating test fixtures.
//
// # Available Builders
//
//   - ConfigBuilder: Creates config.Config instances
//
// # Example
//
//	cfg := NewConfigBuilder().
//	    WithSiteURL(srv.URL).
//	    WithKeyring().
//	    Build()
package builders
