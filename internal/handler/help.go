package handler

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

const commonHelp = `This bot reports the status of a trucking company driver.

Commands:

/status — current status of the driver
/history — latest status changes
/help — this help`

func NewHelpHandler() tele.HandlerFunc {
	return func(c tele.Context) error {
		slog.Info("got command /help", "from", formatHumanName(c.Sender()), "chat", formatHumanName(c.Chat()))
		return c.Send(commonHelp, tele.ModeHTML)
	}
}
