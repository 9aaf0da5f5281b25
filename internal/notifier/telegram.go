package notifier

import (
	"log/slog"

	"github.com/kettari/driver-status/internal/entity"
)

// Telegram forwards status changes to the notification chats
type Telegram struct {
	bot entity.MessageDispatcher
}

func NewTelegramObserver(bot entity.MessageDispatcher) *Telegram {
	return &Telegram{bot: bot}
}

func (t *Telegram) Update(driver *entity.Driver) error {
	slog.Info("status change event fired", "driver", driver.Name(), "status", driver.Status())
	notification := "🚚 " + driver.FormatStatusChange()
	if err := t.bot.Send([]string{notification}); err != nil {
		return err
	}
	slog.Debug("notification sent")
	return nil
}
