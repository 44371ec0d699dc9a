package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fangate-io/fangate/internal/interfaces/cli/server"
	"github.com/fangate-io/fangate/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fangate",
		Short: "Fangate - membership verification engine for chat communities",
		Long:  `Fangate verifies that chat community members follow or subscribe to configured YouTube and Twitch channels and grants the community's verified role.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
