package paths

import (
	"os"
	"path/filepath"
)

const appName = "logira"

// PathManager はlogiraのファイルパスを管理するインターフェース
type PathManager interface {
	ConfigDir() string
	ConfigFile() string
	CredentialsDir() string
	DataDir() string
	LogFile() string
	MetricsTextfile() string
	EnsureDirectories() error
}

type pathManager struct {
	home string
}

// NewPathManager は新しいPathManagerを作成します
//
// home が空の場合は HOME 環境変数を使います。
func NewPathManager(home string) PathManager {
	if home == "" {
		home = os.Getenv("HOME")
	}
	return &pathManager{
		home: home,
	}
}

// ConfigDir は設定ディレクトリのパスを返します
func (p *pathManager) ConfigDir() string {
	return filepath.Join(p.home, ".config", appName)
}

// ConfigFile はユーザー設定ファイルのパスを返します
func (p *pathManager) ConfigFile() string {
	return filepath.Join(p.ConfigDir(), appName+".yml")
}

// CredentialsDir はファイルキーリングの格納ディレクトリを返します
func (p *pathManager) CredentialsDir() string {
	return filepath.Join(p.ConfigDir(), "credentials")
}

// DataDir はデータディレクトリのパスを返します
func (p *pathManager) DataDir() string {
	return filepath.Join(p.home, ".local", "share", appName)
}

// LogFile はログファイルのパスを返します
func (p *pathManager) LogFile() string {
	return filepath.Join(p.DataDir(), "logs", appName+".log")
}

// MetricsTextfile はメトリクスを書き出すテキストファイルのパスを返します
func (p *pathManager) MetricsTextfile() string {
	return filepath.Join(p.DataDir(), "metrics", appName+".prom")
}

// EnsureDirectories は必要なディレクトリを作成します
func (p *pathManager) EnsureDirectories() error {
	dirs := []string{
		p.ConfigDir(),
		filepath.Dir(p.LogFile()),
		filepath.Dir(p.MetricsTextfile()),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
