package entity

import (
	"fmt"
	"html"
	"strings"

	htmlpkg "golang.org/x/net/html"
)

// FormatStatusChange renders the latest change in Telegram HTML markup
func (d *Driver) FormatStatusChange() string {
	return fmt.Sprintf("driver <b>%s</b> changed status from <i>%s</i> to <b>%s</b>",
		html.EscapeString(d.name),
		html.EscapeString(string(d.previous)),
		html.EscapeString(string(d.status)))
}

// FormatCurrentStatus renders the current status in Telegram HTML markup
func (d *Driver) FormatCurrentStatus() string {
	return fmt.Sprintf("your driver <b>%s</b> is now <b>%s</b>",
		html.EscapeString(d.name),
		html.EscapeString(string(d.status)))
}

// PlainText strips markup from an HTML fragment and unescapes entities
func PlainText(fragment string) string {
	var sb strings.Builder
	z := htmlpkg.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case htmlpkg.ErrorToken:
			return sb.String()
		case htmlpkg.TextToken:
			sb.Write(z.Text())
		}
	}
}
