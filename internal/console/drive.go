package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kettari/driver-status/internal/bot"
	"github.com/kettari/driver-status/internal/chatgpt"
	"github.com/kettari/driver-status/internal/config"
	"github.com/kettari/driver-status/internal/entity"
	"github.com/kettari/driver-status/internal/history"
	"github.com/kettari/driver-status/internal/notifier"
	"github.com/kettari/driver-status/internal/observability"
	"github.com/kettari/driver-status/internal/prompt"
	"github.com/kettari/driver-status/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 5 * time.Second

type DriveCommand struct {
	in   io.Reader
	out  io.Writer
	conf *config.Config
}

func NewDriveCommand(in io.Reader, out io.Writer) *DriveCommand {
	cmd := DriveCommand{in: in, out: out}
	return &cmd
}

func (cmd *DriveCommand) Name() string {
	return "drive"
}

func (cmd *DriveCommand) Description() string {
	return "asks for driver status changes and notifies every listener (default)"
}

func (cmd *DriveCommand) Run() error {
	conf := cmd.conf
	if conf == nil {
		conf = config.GetConfig()
	}

	driver := entity.NewDriver(conf.DriverName, conf.InitialStatus)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	if err := registerListeners(driver, conf, cmd.out, metrics); err != nil {
		return err
	}

	if len(conf.MetricsAddr) > 0 {
		server := serveMetrics(conf.MetricsAddr, metrics)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				slog.Warn("metrics server shutdown failed", "error", err)
			}
		}()
	}

	slog.Info("driver console started", "driver", driver.Name(), "status", driver.Status(), "listeners_count", driver.Listeners())
	return prompt.NewLoop(driver, cmd.in, cmd.out, metrics).Run(context.Background())
}

// registerListeners attaches the console listeners and every configured integration
func registerListeners(driver *entity.Driver, conf *config.Config, out io.Writer, metrics *observability.Metrics) error {
	driver.Register(entity.NewDispatchOfficeObserver(out))
	for _, name := range conf.Customers {
		driver.Register(entity.NewCustomerObserver(name, out))
	}
	driver.Register(notifier.NewMetricsObserver(metrics))

	if conf.DatabaseEnabled() {
		journal := history.NewJournal(storage.NewManager(conf.DbConnectionString))
		if err := journal.Migrate(); err != nil {
			return fmt.Errorf("prepare status journal: %w", err)
		}
		driver.Register(notifier.NewJournalObserver(journal))
		slog.Debug("status journal enabled")
	}

	if conf.TelegramEnabled() {
		b, err := bot.CreateBot(conf.BotToken, conf.NotificationChatID)
		if err != nil {
			slog.Error("unable to create bot processor object", "error", err)
			return err
		}
		driver.Register(notifier.NewTelegramObserver(b))
		slog.Debug("telegram notifications enabled")
	}

	if conf.OpenAIEnabled() {
		driver.Register(notifier.NewAnnouncerObserver(chatgpt.NewChatGPT(conf.OpenAIApiKey, conf.OpenAILanguageModel), out))
		slog.Debug("fleet announcements enabled", "model", conf.OpenAILanguageModel)
	}

	return nil
}

func serveMetrics(addr string, metrics *observability.Metrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("serving metrics", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", "error", err)
		}
	}()

	return server
}
