package middle

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Logger returns a middle that logs incoming updates.
func Logger(logger *slog.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			attrs := []any{"update_id", c.Update().ID}
			if sender := c.Sender(); sender != nil {
				attrs = append(attrs, "sender_id", sender.ID)
			}
			if msg := c.Message(); msg != nil {
				attrs = append(attrs, "text", msg.Text)
			}
			logger.Debug("incoming update", attrs...)
			return next(c)
		}
	}
}
