package remote

import (
	"sort"
	"strings"

	"github.com/douhashi/logira/internal/jira"
)

// createIssueRequest is the body of POST /rest/api/2/issue.
type createIssueRequest struct {
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Project     keyRef    `json:"project"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Environment string    `json:"environment,omitempty"`
	Components  []nameRef `json:"components,omitempty"`
	IssueType   nameRef   `json:"issuetype"`
}

type keyRef struct {
	Key string `json:"key"`
}

type nameRef struct {
	Name string `json:"name"`
}

// createdIssue is the response of a successful creation.
type createdIssue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

// errorResponse is the standard Jira REST error body.
type errorResponse struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// message flattens the error body into one line. Field errors are sorted by field name.
func (e *errorResponse) message() string {
	parts := append([]string{}, e.ErrorMessages...)

	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		parts = append(parts, field+": "+e.Errors[field])
	}

	return strings.Join(parts, "; ")
}

func newCreateIssueRequest(issue *jira.RemoteIssue) *createIssueRequest {
	req := &createIssueRequest{
		Fields: issueFields{
			Project:     keyRef{Key: issue.ProjectKey},
			Summary:     issue.Summary,
			Description: issue.Description,
			Environment: issue.Environment,
			IssueType:   nameRef{Name: issue.IssueType},
		},
	}
	if req.Fields.IssueType.Name == "" {
		req.Fields.IssueType.Name = jira.DefaultIssueType
	}
	for _, c := range issue.Components {
		req.Fields.Components = append(req.Fields.Components, nameRef{Name: c})
	}
	return req
}
