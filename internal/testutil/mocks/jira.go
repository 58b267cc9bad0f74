package mocks

import (
	"context"

	"github.com/douhashi/logira/internal/jira"
	"github.com/stretchr/testify/mock"
)

// MockRemoteIssueCreator is a mock implementation of jira.RemoteIssueCreator interface
type MockRemoteIssueCreator struct {
	mock.Mock
}

// NewMockRemoteIssueCreator creates a new instance of MockRemoteIssueCreator
func NewMockRemoteIssueCreator() *MockRemoteIssueCreator {
	return &MockRemoteIssueCreator{}
}

// WithDefaultBehavior sets up common default behaviors for the mock
func (m *MockRemoteIssueCreator) WithDefaultBehavior() *MockRemoteIssueCreator {
	// 課題作成は常に成功する
	m.On("CreateIssue", mock.Anything, mock.Anything).Maybe().Return("TST-1", nil)
	return m
}

// CreateIssue mocks the CreateIssue method
func (m *MockRemoteIssueCreator) CreateIssue(ctx context.Context, issue *jira.RemoteIssue) (string, error) {
	args := m.Called(ctx, issue)
	return args.String(0), args.Error(1)
}

// Ensure MockRemoteIssueCreator implements jira.RemoteIssueCreator interface
var _ jira.RemoteIssueCreator = (*MockRemoteIssueCreator)(nil)
