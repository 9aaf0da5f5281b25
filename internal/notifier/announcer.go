package notifier

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kettari/driver-status/internal/entity"
)

const announceTimeout = 20 * time.Second

type Composer interface {
	ComposeAnnouncement(ctx context.Context, driverName, from, to string) (string, error)
}

// Announcer prints a fleet announcement phrased by the language model
type Announcer struct {
	composer Composer
	out      io.Writer
	timeout  time.Duration
}

func NewAnnouncerObserver(composer Composer, out io.Writer) *Announcer {
	return &Announcer{composer: composer, out: out, timeout: announceTimeout}
}

func (a *Announcer) Update(driver *entity.Driver) error {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	announcement, err := a.composer.ComposeAnnouncement(ctx, driver.Name(),
		string(driver.PreviousStatus()), string(driver.Status()))
	if err != nil {
		return fmt.Errorf("compose announcement: %w", err)
	}
	slog.Debug("announcement composed", "driver", driver.Name(), "announcement", announcement)

	_, err = fmt.Fprintf(a.out, "Fleet radio: %s\n", announcement)
	return err
}
