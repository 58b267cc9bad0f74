package jira

import (
	"fmt"
	"strings"
)

// https://jira.atlassian.com/secure/WikiRendererHelpAction.jspa?section=all

// Macro はJiraのリッチテキストマクロを表す
type Macro interface {
	Render() string
}

// CodeMacro renders a {code} block with an optional title.
type CodeMacro struct {
	Code  string
	Title string
}

// Render returns the wiki markup for the code block
func (m CodeMacro) Render() string {
	if m.Title == "" {
		return fmt.Sprintf("{code}%s{code}", m.Code)
	}
	return fmt.Sprintf("{code:title=%s}%s{code}", m.Title, m.Code)
}

// QuoteMacro renders a {quote} block.
type QuoteMacro struct {
	Quote string
}

// Render returns the wiki markup for the quote block
func (m QuoteMacro) Render() string {
	return fmt.Sprintf("{quote}%s{quote}", m.Quote)
}

// noformat wraps preformatted text so Jira keeps its line breaks.
func noformat(text string) string {
	return "{noformat}" + strings.TrimRight(text, "\n") + "{noformat}"
}
