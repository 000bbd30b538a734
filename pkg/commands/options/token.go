// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TokenOptions lets a command override the resolved credential.
type TokenOptions struct {
	Token string
}

// AddTokenArg wires the token override flag on the provided command.
func AddTokenArg(cmd *cobra.Command, o *TokenOptions) {
	cmd.Flags().StringVar(&o.Token, "token", "",
		"Slack user token. Defaults to SLACK_USER_TOKEN or the .moments secrets file.")
}

// Resolve prefers the flag value over the configured credential.
func (o *TokenOptions) Resolve(configured string) string {
	if o.Token != "" {
		return o.Token
	}
	return configured
}
