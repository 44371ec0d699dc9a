// Package token implements the CLI command that mints service tokens for
// collaborator services.
package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fangate-io/fangate/internal/infrastructure/auth"
	"github.com/fangate-io/fangate/internal/infrastructure/config"
)

var serviceName string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a service token",
		Long:  `Mint a signed service token a collaborator service (such as the chat bot) uses to call the API.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&serviceName, "service", "s", "", "Name of the service the token is for")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	manager := auth.NewServiceTokenManager(
		cfg.Auth.ServiceTokenSecret,
		time.Duration(cfg.Auth.ServiceTokenTTL)*time.Hour,
	)

	signed, err := manager.Generate(serviceName)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Println(signed)
	return nil
}
