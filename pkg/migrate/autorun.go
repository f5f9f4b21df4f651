package migrate

import (
	"context"

	"github.com/pedeaqui/pedeaqui-backend/pkg/config"
	"github.com/pedeaqui/pedeaqui-backend/pkg/db"
	"github.com/pedeaqui/pedeaqui-backend/pkg/logger"
)

// MaybeRunDev applies pending migrations on boot in development when the
// auto-migrate flag is set. Production deploys run cmd/migrate explicitly.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if cfg == nil || client == nil {
		return nil
	}
	if !cfg.App.AutoMigrate || !cfg.App.IsDev() {
		return nil
	}

	sqlDB, err := client.SQLDB()
	if err != nil {
		return err
	}
	if logg != nil {
		logg.Info(ctx, "running dev auto-migrations")
	}
	return Up(ctx, sqlDB, DefaultDir)
}
