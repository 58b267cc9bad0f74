// Package mocks provides common mock implementations for interfaces used throughout the logira codebase.
//
// These mocks are built using testify/mock and provide consistent behavior across all tests.
//
// # Available Mocks
//
//   - MockRemoteIssueCreator: Mock for jira.RemoteIssueCreator interface
//   - MockLogger: Mock for logger.Logger interface
//
// # Example
//
//	func TestSomething(t *testing.T) {
//	    creator := NewMockRemoteIssueCreator()
//	    creator.On("CreateIssue", mock.Anything, mock.Anything).Return("TST-1", nil)
//
//	    issue, err := jira.NewIssueBuilder(cfg, creator).
//	        Project("TST").
//	        Summary("Summary").
//	        Create(ctx)
//	    // ...
//	}
package mocks
