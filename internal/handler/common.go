package handler

import (
	"fmt"
	"html"
	"strings"

	"github.com/kettari/driver-status/internal/entity"
	tele "gopkg.in/telebot.v4"
)

const historyLimit = 10

// Journal is the read side of the status journal
type Journal interface {
	Recent(driverName string, limit int) ([]entity.StatusChange, error)
}

func formatHumanName(guest any) string {
	var parts []string
	switch g := guest.(type) {
	case *tele.User:
		if g == nil {
			return ""
		}
		parts = append(parts, g.FirstName, g.LastName)
		if len(g.Username) > 0 {
			parts = append(parts, fmt.Sprintf("(@%s)", g.Username))
		}
	case *tele.Chat:
		if g == nil {
			return ""
		}
		if len(g.Title) > 0 {
			parts = append(parts, fmt.Sprintf("'%s'", g.Title))
		}
		if len(g.Username) > 0 {
			parts = append(parts, fmt.Sprintf("(@%s)", g.Username))
		}
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func formatChange(change entity.StatusChange) string {
	return fmt.Sprintf("%s <i>%s</i> → <b>%s</b>",
		change.CreatedAt.Format("02.01 15:04"),
		html.EscapeString(string(change.FromStatus)),
		html.EscapeString(string(change.ToStatus)))
}
