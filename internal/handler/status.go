package handler

import (
	"fmt"
	"html"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// NewStatusHandler replies with the latest journaled status of the driver
func NewStatusHandler(journal Journal, driverName string) tele.HandlerFunc {
	return func(c tele.Context) error {
		slog.Info("got command /status", "from", formatHumanName(c.Sender()), "chat", formatHumanName(c.Chat()))

		changes, err := journal.Recent(driverName, 1)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			return c.Send(fmt.Sprintf("No status changes recorded for <b>%s</b> yet", html.EscapeString(driverName)), tele.ModeHTML)
		}
		return c.Send(fmt.Sprintf("Driver <b>%s</b> is <b>%s</b> since %s",
			html.EscapeString(driverName),
			html.EscapeString(string(changes[0].ToStatus)),
			changes[0].CreatedAt.Format("02.01 15:04")), tele.ModeHTML)
	}
}

// NewHistoryHandler replies with the latest status changes, newest first
func NewHistoryHandler(journal Journal, driverName string) tele.HandlerFunc {
	return func(c tele.Context) error {
		slog.Info("got command /history", "from", formatHumanName(c.Sender()), "chat", formatHumanName(c.Chat()))

		changes, err := journal.Recent(driverName, historyLimit)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			return c.Send(fmt.Sprintf("No status changes recorded for <b>%s</b> yet", html.EscapeString(driverName)), tele.ModeHTML)
		}

		lines := []string{fmt.Sprintf("Latest status changes of <b>%s</b>:", html.EscapeString(driverName))}
		for _, change := range changes {
			lines = append(lines, formatChange(change))
		}
		return c.Send(strings.Join(lines, "\n"), tele.ModeHTML)
	}
}
