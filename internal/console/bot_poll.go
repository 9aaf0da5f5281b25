package console

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kettari/driver-status/internal/config"
	"github.com/kettari/driver-status/internal/handler"
	"github.com/kettari/driver-status/internal/history"
	middle "github.com/kettari/driver-status/internal/middleware"
	"github.com/kettari/driver-status/internal/storage"
	tele "gopkg.in/telebot.v4"
)

const pollTimeout = 58

var errNoTelegram = errors.New("telegram is not configured")

type BotPollCommand struct {
}

func NewBotPollCommand() *BotPollCommand {
	cmd := BotPollCommand{}
	return &cmd
}

func (cmd *BotPollCommand) Name() string {
	return "bot:poll"
}

func (cmd *BotPollCommand) Description() string {
	return "polls Telegram Bot API and answers /status and /history from the database"
}

func (cmd *BotPollCommand) Run() error {
	conf := config.GetConfig()
	if len(conf.BotToken) == 0 {
		return fmt.Errorf("%w: set DRIVER_TELEGRAM_TOKEN", errNoTelegram)
	}
	if !conf.DatabaseEnabled() {
		return fmt.Errorf("%w: set DRIVER_DB_STRING", history.ErrNoDatabase)
	}
	journal := history.NewJournal(storage.NewManager(conf.DbConnectionString))

	slog.Info("starting the bot")
	pref := tele.Settings{
		Token:  conf.BotToken,
		Poller: &tele.LongPoller{Timeout: 1 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		slog.Error("unable to create bot processor object", "error", err)
		return err
	}
	b.Use(middle.Logger(slog.Default()))

	// List bot commands
	b.Handle("/help", handler.NewHelpHandler())
	b.Handle("/start", handler.NewStartHandler())
	b.Handle("/status", handler.NewStatusHandler(journal, conf.DriverName))
	b.Handle("/history", handler.NewHistoryHandler(journal, conf.DriverName))

	// Gracefully shutdown the bot after timeout
	go stopPoll(b)
	// Start poll
	b.Start()

	slog.Info("bot stopped, exiting")

	return nil
}

// stopPoll after timeout
func stopPoll(bot *tele.Bot) {
	stop := time.After(pollTimeout * time.Second)
	slog.Info("timeout for shutdown started", "timeout_seconds", pollTimeout)
	<-stop
	slog.Info("stopping the poll")
	bot.Stop()
}
