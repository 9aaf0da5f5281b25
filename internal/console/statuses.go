package console

import (
	"fmt"
	"io"

	"github.com/kettari/driver-status/internal/entity"
)

type StatusesCommand struct {
	out io.Writer
}

func NewStatusesCommand(out io.Writer) *StatusesCommand {
	cmd := StatusesCommand{out: out}
	return &cmd
}

func (cmd *StatusesCommand) Name() string {
	return "statuses"
}

func (cmd *StatusesCommand) Description() string {
	return "lists the statuses a driver can have"
}

func (cmd *StatusesCommand) Run() error {
	for _, status := range entity.Statuses() {
		if _, err := fmt.Fprintln(cmd.out, status); err != nil {
			return err
		}
	}
	return nil
}
