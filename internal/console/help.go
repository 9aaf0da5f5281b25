package console

import (
	"fmt"
	"io"
)

type HelpCommand struct {
	out      io.Writer
	commands []Command
}

func NewHelpCommand(out io.Writer) *HelpCommand {
	cmd := HelpCommand{out: out}
	return &cmd
}

// SetCommands sets the commands listed by help
func (cmd *HelpCommand) SetCommands(commands []Command) {
	cmd.commands = commands
}

func (cmd *HelpCommand) Name() string {
	return "help"
}

func (cmd *HelpCommand) Description() string {
	return "prints this help"
}

func (cmd *HelpCommand) Run() error {
	fmt.Fprintln(cmd.out, "Usage: driver_console [command]")
	for _, c := range cmd.commands {
		fmt.Fprintf(cmd.out, "\t%s - %s\n", c.Name(), c.Description())
	}
	return nil
}
