package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kettari/driver-status/internal/config"
	"github.com/kettari/driver-status/internal/console"
)

const defaultCommand = "drive"

type Commands []console.Command

func main() {
	config.GetConfig()
	slog.Info("starting console command")

	commands := initCommands()
	arg := defaultCommand
	if len(os.Args) > 1 {
		arg = os.Args[1]
	}
	runCommand(commands, arg)

	slog.Info("command finished")
}

func initCommands() *Commands {
	help := console.NewHelpCommand(os.Stdout)
	commands := Commands{
		help,
		console.NewDriveCommand(os.Stdin, os.Stdout),
		console.NewStatusesCommand(os.Stdout),
		console.NewHistoryCommand(os.Stdout),
		console.NewMigrateCommand(),
		console.NewBotPollCommand(),
	}
	help.SetCommands(commands)
	return &commands
}

func runCommand(commands *Commands, arg string) {
	for _, cmd := range *commands {
		if arg == cmd.Name() {
			slog.Info("command found", "command", cmd.Name())
			if err := cmd.Run(); err != nil {
				slog.Error(err.Error())
				os.Exit(1)
			}
			return
		}
	}
	fmt.Printf("command '%s' not found\n", arg)
	for _, cmd := range *commands {
		if cmd.Name() == "help" {
			_ = cmd.Run()
		}
	}
	os.Exit(1)
}
