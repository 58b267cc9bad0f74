package jira

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// serverEnvironment はホストの実行時情報から環境の説明文を作成する
func serverEnvironment() string {
	buf := &strings.Builder{}

	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(buf, "Host:", host)
	}
	if wd, err := os.Getwd(); err == nil {
		fmt.Fprintln(buf, "Working directory:", wd)
	}
	fmt.Fprintf(buf, "OS: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(buf, "Runtime:", runtime.Version())
	fmt.Fprintln(buf, "PID:", os.Getpid())
	if exe, err := os.Executable(); err == nil {
		fmt.Fprintln(buf, "Executable:", exe)
	}

	return strings.TrimSpace(buf.String())
}
