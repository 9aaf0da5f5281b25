package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kettari/driver-status/internal/config"
	"github.com/kettari/driver-status/internal/history"
	"github.com/kettari/driver-status/internal/storage"
)

const historyLimit = 20

type HistoryCommand struct {
	out  io.Writer
	conf *config.Config
}

func NewHistoryCommand(out io.Writer) *HistoryCommand {
	cmd := HistoryCommand{out: out}
	return &cmd
}

func (cmd *HistoryCommand) Name() string {
	return "history"
}

func (cmd *HistoryCommand) Description() string {
	return "prints the latest status changes of the driver from the database"
}

func (cmd *HistoryCommand) Run() error {
	conf := cmd.conf
	if conf == nil {
		conf = config.GetConfig()
	}
	if !conf.DatabaseEnabled() {
		return fmt.Errorf("%w: set DRIVER_DB_STRING", history.ErrNoDatabase)
	}

	journal := history.NewJournal(storage.NewManager(conf.DbConnectionString))
	changes, err := journal.Recent(conf.DriverName, historyLimit)
	if err != nil {
		return err
	}
	slog.Debug("status history loaded", "driver", conf.DriverName, "changes_count", len(changes))

	if len(changes) == 0 {
		_, err = fmt.Fprintf(cmd.out, "No status changes recorded for %s\n", conf.DriverName)
		return err
	}
	for _, change := range changes {
		if _, err = fmt.Fprintf(cmd.out, "%s  %s -> %s\n",
			change.CreatedAt.Format("2006-01-02 15:04:05"), change.FromStatus, change.ToStatus); err != nil {
			return err
		}
	}
	return nil
}
