// Package testutil provides common test utilities, mocks, and builders for testing logira components.
//
// This package is organized into the following sub-packages:
//
//   - mocks: Common mock implementations for interfaces used throughout the codebase
//   - builders: Test data builders using the builder pattern for creating test fixtures
//   - helpers: General test helper functions and utilities
//
// # Usage
//
// Import the specific sub-package you need:
//
//	import "github.com/douhashi/logira/internal/testutil/mocks"
//	import "github.com/douhashi/logira/internal/testutil/builders"
//
// # Example
//
// Using mocks:
//
//	creator := mocks.NewMockRemoteIssueCreator()
//	creator.On("CreateIssue", mock.Anything, mock.Anything).Return("TST-1", nil)
//
// Using builders:
//
//	cfg := builders.NewConfigBuilder().
//	    WithSiteURL("https://jira.example.com").
//	    WithMaxSummaryLength(100).
//	    Build()
package testutil
