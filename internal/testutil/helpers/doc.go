// Package helpers provides general test helper functions and utilities.
//
// # Available Helpers
//
//   - ObservableLogger: a logger.Logger that records entries for assertions
//
// # Example
//
//	func TestLogging(t *testing.T) {
//	    log, recorded := helpers.NewObservableLogger(zapcore.DebugLevel)
//	    client, _ := remote.NewClient(cfg, remote.WithLogger(log))
//	    // ...
//	    assert.Equal(t, 1, recorded.FilterMessage("jira_api_request").Len())
//	}
package helpers
