package console

import (
	"fmt"
	"log/slog"

	"github.com/kettari/driver-status/internal/config"
	"github.com/kettari/driver-status/internal/history"
	"github.com/kettari/driver-status/internal/storage"
)

type MigrateCommand struct {
	conf *config.Config
}

func NewMigrateCommand() *MigrateCommand {
	cmd := MigrateCommand{}
	return &cmd
}

func (cmd *MigrateCommand) Name() string {
	return "migrate"
}

func (cmd *MigrateCommand) Description() string {
	return "migrates GORM database scheme"
}

func (cmd *MigrateCommand) Run() error {
	slog.Info("migrating GORM database scheme")

	conf := cmd.conf
	if conf == nil {
		conf = config.GetConfig()
	}
	if !conf.DatabaseEnabled() {
		return fmt.Errorf("%w: set DRIVER_DB_STRING", history.ErrNoDatabase)
	}

	if err := history.NewJournal(storage.NewManager(conf.DbConnectionString)).Migrate(); err != nil {
		return err
	}

	slog.Info("successfully migrated GORM database scheme")

	return nil
}
