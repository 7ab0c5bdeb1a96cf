package expire

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gymcore/internal/application/member/usecases"
	"gymcore/internal/infrastructure/config"
	"gymcore/internal/infrastructure/database"
	"gymcore/internal/infrastructure/repository"
	"gymcore/internal/shared/biztime"
	"gymcore/internal/shared/logger"
)

var env string

// NewCommand returns the bulk status recompute command. It is meant to run
// from cron shortly after midnight so lapsed memberships flip to expired
// without waiting for a front-desk lookup.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expire-memberships",
		Short: "Mark lapsed memberships as expired",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	memberRepo := repository.NewMemberRepository(database.Get(), logger.NewLogger())
	uc := usecases.NewExpireMembershipsUseCase(memberRepo, biztime.System(), logger.NewLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	updated, err := uc.Execute(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire memberships: %w", err)
	}

	logger.Info("membership expiration pass finished", "updated", updated)
	return nil
}
