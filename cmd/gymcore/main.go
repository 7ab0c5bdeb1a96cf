package main

import (
	"os"

	"github.com/spf13/cobra"

	"gymcore/internal/interfaces/cli/expire"
	"gymcore/internal/interfaces/cli/migrate"
	"gymcore/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gymcore",
		Short: "Gymcore - gym membership management backend",
		Long:  `Gymcore manages gym members, plans, payments and the membership renewal lifecycle.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		expire.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
