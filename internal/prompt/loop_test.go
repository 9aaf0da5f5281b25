package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kettari/driver-status/internal/entity"
	"github.com/kettari/driver-status/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type recorder struct {
	seen []entity.Status
}

func (r *recorder) Update(driver *entity.Driver) error {
	r.seen = append(r.seen, driver.Status())
	return nil
}

type failing struct{}

func (f *failing) Update(*entity.Driver) error {
	return errors.New("radio is broken")
}

func run(t *testing.T, driver *entity.Driver, input string) string {
	t.Helper()
	var out strings.Builder
	loop := NewLoop(driver, strings.NewReader(input), &out, nil)
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if loop.State() != Finished {
		t.Errorf("State() = %v, want %v", loop.State(), Finished)
	}
	return out.String()
}

func TestLoop_Run(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantStatus entity.Status
		wantSeen   []entity.Status
		contains   []string
		prompts    int
	}{
		{
			name:       "no terminates",
			input:      "no\n",
			wantStatus: entity.StatusAvailable,
			contains:   []string{"Current status of John Doe: Available", "Goodbye!"},
			prompts:    1,
		},
		{
			name:       "short answers",
			input:      "y\nloading\nN\n",
			wantStatus: entity.StatusLoading,
			wantSeen:   []entity.Status{entity.StatusLoading},
			contains:   []string{"Current status of John Doe: Loading", "Goodbye!"},
			prompts:    2,
		},
		{
			name:       "change twice",
			input:      "yes\nEn Route\nyes\nUnloading\nno\n",
			wantStatus: entity.StatusUnloading,
			wantSeen:   []entity.Status{entity.StatusEnRoute, entity.StatusUnloading},
			contains:   []string{"Available statuses: En Route, Loading, Unloading, Off Duty"},
			prompts:    3,
		},
		{
			name:       "unrecognized answer reprompts",
			input:      "maybe\n\nno\n",
			wantStatus: entity.StatusAvailable,
			contains:   []string{"Please answer yes or no."},
			prompts:    3,
		},
		{
			name:       "current status is rejected",
			input:      "yes\nAvailable\nOff Duty\nno\n",
			wantStatus: entity.StatusOffDuty,
			wantSeen:   []entity.Status{entity.StatusOffDuty},
			contains:   []string{`Invalid status "Available"`},
			prompts:    2,
		},
		{
			name:       "end of input",
			input:      "yes\nEn Route\n",
			wantStatus: entity.StatusEnRoute,
			wantSeen:   []entity.Status{entity.StatusEnRoute},
			contains:   []string{"Goodbye!"},
			prompts:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listener := &recorder{}
			driver := entity.NewDriver("John Doe", entity.StatusAvailable)
			driver.Register(listener)

			out := run(t, driver, tt.input)

			if driver.Status() != tt.wantStatus {
				t.Errorf("Status() = %q, want %q", driver.Status(), tt.wantStatus)
			}
			if len(listener.seen) != len(tt.wantSeen) {
				t.Fatalf("listener saw %v, want %v", listener.seen, tt.wantSeen)
			}
			for k := range tt.wantSeen {
				if listener.seen[k] != tt.wantSeen[k] {
					t.Errorf("listener saw %v, want %v", listener.seen, tt.wantSeen)
				}
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output does not contain %q:\n%s", s, out)
				}
			}
			if got := strings.Count(out, "Has the status changed? (yes/no): "); got != tt.prompts {
				t.Errorf("continue prompt shown %d times, want %d", got, tt.prompts)
			}
		})
	}
}

func TestLoop_Run_InvalidStatus(t *testing.T) {
	listener := &recorder{}
	driver := entity.NewDriver("John Doe", entity.StatusAvailable)
	driver.Register(listener)

	out := run(t, driver, "yes\nInvalidStatus\n")

	if !strings.Contains(out, `Invalid status "InvalidStatus". Please choose one of: En Route, Loading, Unloading, Off Duty`) {
		t.Errorf("output does not report the invalid status:\n%s", out)
	}
	if got := strings.Count(out, "Enter the new status: "); got != 2 {
		t.Errorf("status prompt shown %d times, want 2", got)
	}
	if driver.Status() != entity.StatusAvailable {
		t.Errorf("Status() = %q, want %q", driver.Status(), entity.StatusAvailable)
	}
	if len(listener.seen) != 0 {
		t.Errorf("listener notified %d times, want 0", len(listener.seen))
	}
}

func TestLoop_Run_NoEndsWithoutFurtherPrompts(t *testing.T) {
	driver := entity.NewDriver("John Doe", entity.StatusAvailable)
	out := run(t, driver, "no\nyes\nEn Route\n")

	if !strings.HasSuffix(out, "Goodbye!\n") {
		t.Errorf("output does not end with goodbye:\n%s", out)
	}
	if strings.Contains(out, "Enter the new status") {
		t.Errorf("loop kept prompting after no:\n%s", out)
	}
	if driver.Status() != entity.StatusAvailable {
		t.Errorf("Status() = %q, want %q", driver.Status(), entity.StatusAvailable)
	}
}

func TestLoop_Run_ListenerFailure(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	listener := &recorder{}
	driver := entity.NewDriver("John Doe", entity.StatusAvailable)
	driver.Register(&failing{})
	driver.Register(listener)

	var out strings.Builder
	loop := NewLoop(driver, strings.NewReader("yes\nEn Route\nno\n"), &out, metrics)
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(out.String(), "Warning: listener *prompt.failing: radio is broken") {
		t.Errorf("output does not report the failure:\n%s", out.String())
	}
	if len(listener.seen) != 1 {
		t.Errorf("healthy listener notified %d times, want 1", len(listener.seen))
	}
	count, err := testutil.GatherAndCount(registry, "driver_notification_failures_total")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("failure series = %d, want 1", count)
	}
}

func TestLoop_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := entity.NewDriver("John Doe", entity.StatusAvailable)
	loop := NewLoop(driver, strings.NewReader("yes\n"), &strings.Builder{}, nil)
	if err := loop.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
