package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gymcore/internal/infrastructure/config"
	"gymcore/internal/infrastructure/database"
	"gymcore/internal/infrastructure/persistence/models"
	"gymcore/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
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

	// Plans first: members and periods reference them.
	err = database.Get().AutoMigrate(
		&models.PlanModel{},
		&models.MemberModel{},
		&models.MembershipPeriodModel{},
		&models.PaymentModel{},
		&models.CheckInModel{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database schema migrated")
	return nil
}
