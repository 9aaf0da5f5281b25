package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kettari/driver-status/internal/entity"
	"github.com/kettari/driver-status/internal/observability"
)

type State int

const (
	AwaitingContinue State = iota
	AwaitingNewStatus
	Finished
)

func (s State) String() string {
	switch s {
	case AwaitingContinue:
		return "awaiting_continue"
	case AwaitingNewStatus:
		return "awaiting_new_status"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Loop asks whether the driver's status changed and applies the answers
type Loop struct {
	driver  *entity.Driver
	scanner *bufio.Scanner
	out     io.Writer
	metrics *observability.Metrics
	state   State
}

// NewLoop creates a loop reading answers from in. metrics may be nil.
func NewLoop(driver *entity.Driver, in io.Reader, out io.Writer, metrics *observability.Metrics) *Loop {
	return &Loop{
		driver:  driver,
		scanner: bufio.NewScanner(in),
		out:     out,
		metrics: metrics,
		state:   AwaitingContinue,
	}
}

func (l *Loop) State() State {
	return l.state
}

// Run blocks until the user answers "no", the input ends or ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	for l.state != Finished {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch l.state {
		case AwaitingContinue:
			l.printf("Current status of %s: %s\n", l.driver.Name(), l.driver.Status())
			l.printf("Has the status changed? (yes/no): ")
		case AwaitingNewStatus:
			l.printf("Available statuses: %s\n", entity.JoinStatuses(l.driver.Status().Transitions()))
			l.printf("Enter the new status: ")
		}

		if !l.scanner.Scan() {
			if err := l.scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			l.printf("\nGoodbye!\n")
			l.state = Finished
			break
		}

		l.handle(l.scanner.Text())
	}

	slog.Debug("prompt loop finished", "driver", l.driver.Name(), "status", l.driver.Status())
	return nil
}

func (l *Loop) handle(line string) {
	switch l.state {
	case AwaitingContinue:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			l.state = AwaitingNewStatus
		case "no", "n":
			l.printf("Goodbye!\n")
			l.state = Finished
		default:
			l.printf("Please answer yes or no.\n")
		}

	case AwaitingNewStatus:
		current := l.driver.Status()
		status, err := entity.ParseStatus(line)
		if err != nil || status == current {
			slog.Debug("rejected status", "input", line, "current", current)
			l.printf("Invalid status %q. Please choose one of: %s\n",
				strings.TrimSpace(line), entity.JoinStatuses(current.Transitions()))
			return
		}

		if err = l.driver.ChangeStatus(status); err != nil {
			l.reportFailures(err)
		}
		l.state = AwaitingContinue
	}
}

func (l *Loop) reportFailures(err error) {
	failures := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		failures = joined.Unwrap()
	}
	for _, failure := range failures {
		var listenerErr *entity.ListenerError
		if errors.As(failure, &listenerErr) {
			l.metrics.IncFailure(fmt.Sprintf("%T", listenerErr.Listener))
		}
		l.printf("Warning: %v\n", failure)
	}
}

func (l *Loop) printf(format string, a ...any) {
	if _, err := fmt.Fprintf(l.out, format, a...); err != nil {
		slog.Warn("unable to write prompt", "error", err)
	}
}
