package jira

import (
	"errors"
	"fmt"
	"strings"
)

// maxErrorChainDepth guards against Unwrap cycles.
const maxErrorChainDepth = 64

// renderErrorChain はエラーの原因チェーンを根本原因から順に書き出す
func renderErrorChain(err error) string {
	var chain []error
	for e := err; e != nil && len(chain) < maxErrorChainDepth; e = errors.Unwrap(e) {
		chain = append(chain, e)
	}

	buf := &strings.Builder{}
	for i := len(chain) - 1; i >= 0; i-- {
		var wrapped error
		if i+1 < len(chain) {
			wrapped = chain[i+1]
		}
		fmt.Fprintf(buf, "%T: %s\n", chain[i], ownMessage(chain[i], wrapped))
	}
	return noformat(buf.String())
}

// ownMessage strips the wrapped error's text that %w formatting appended.
func ownMessage(err, wrapped error) string {
	msg := err.Error()
	if wrapped == nil {
		return msg
	}
	if own, ok := strings.CutSuffix(msg, ": "+wrapped.Error()); ok && own != "" {
		return own
	}
	return msg
}
