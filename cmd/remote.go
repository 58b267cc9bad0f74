package cmd

import (
	"fmt"

	"github.com/douhashi/logira/internal/config"
	"github.com/douhashi/logira/internal/credential"
	"github.com/douhashi/logira/internal/jira"
	"github.com/douhashi/logira/internal/logger"
	"github.com/douhashi/logira/internal/metrics"
	"github.com/douhashi/logira/internal/remote"
)

// モック用の関数変数
var (
	openCredentialStoreFunc = credential.Open
	newRemoteCreatorFunc    = newRemoteCreator
)

// resolveCredentials はキーリングから認証情報を補完する
func resolveCredentials(cfg *config.Config, jc *jira.Configuration) error {
	if !cfg.Jira.UseKeyring {
		return nil
	}

	store, err := openCredentialStoreFunc()
	if err != nil {
		return err
	}

	token, err := store.Resolve(cfg.Jira.Token, credential.TokenKey)
	if err != nil {
		return err
	}
	password, err := store.Resolve(cfg.Jira.Password, credential.PasswordKey)
	if err != nil {
		return err
	}

	jc.SetToken(token)
	jc.Configure(cfg.Jira.SiteURL, cfg.Jira.Username, password)
	return nil
}

// newRemoteCreator はJira REST APIへ送信するRemoteIssueCreatorを組み立てる
//
// 返されるCollectorは送信後にFlushする。
func newRemoteCreator(cfg *config.Config, jc *jira.Configuration, log logger.Logger) (jira.RemoteIssueCreator, metrics.Collector, error) {
	if err := resolveCredentials(cfg, jc); err != nil {
		return nil, nil, fmt.Errorf("failed to resolve credentials: %w", err)
	}

	client, err := remote.NewClient(jc,
		remote.WithTimeout(cfg.Jira.Timeout),
		remote.WithLogger(log),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	var collector metrics.Collector = metrics.NopCollector{}
	if cfg.Metrics.Enabled {
		pc, err := metrics.NewPrometheusCollector(cfg.Metrics.Textfile)
		if err != nil {
			return nil, nil, err
		}
		collector = pc
	}

	return metrics.NewInstrumentedCreator(client, collector), collector, nil
}
