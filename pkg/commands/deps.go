package commands

import (
	"tableflip.dev/moments/pkg/slack"
	"tableflip.dev/moments/pkg/store"
)

// loadDeps resolves config and builds the shared client. The token still
// passes through options.TokenOptions so a --token flag can override it.
func loadDeps() (store.Config, *slack.Client, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg, slack.NewClient(cfg.Timeout()), nil
}
