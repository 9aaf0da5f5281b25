package entity

import (
	"errors"
	"fmt"
	"log/slog"
)

// Driver is the subject whose status changes are broadcast to the registered listeners
type Driver struct {
	name      string
	status    Status
	previous  Status
	listeners []Listener
}

var _ Subject = (*Driver)(nil)

func NewDriver(name string, status Status) *Driver {
	return &Driver{
		name:     name,
		status:   status,
		previous: status,
	}
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) Status() Status {
	return d.status
}

// PreviousStatus is the status overwritten by the latest change
func (d *Driver) PreviousStatus() Status {
	return d.previous
}

// Register appends listener; the same listener may be registered more than once
func (d *Driver) Register(listener Listener) {
	d.listeners = append(d.listeners, listener)
}

// Unregister removes the first registration of listener, if any
func (d *Driver) Unregister(listener Listener) {
	for k, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:k:k], d.listeners[k+1:]...)
			return
		}
	}
}

func (d *Driver) Listeners() int {
	return len(d.listeners)
}

// ChangeStatus overwrites the status without validation and notifies listeners once
func (d *Driver) ChangeStatus(status Status) error {
	d.previous = d.status
	d.status = status
	slog.Debug("driver status changed", "driver", d.name, "from", d.previous, "to", d.status)
	return d.Notify()
}

// Notify calls every listener in registration order. Failing listeners do not
// stop the rest; their errors are joined into the result.
func (d *Driver) Notify() error {
	listeners := make([]Listener, len(d.listeners))
	copy(listeners, d.listeners)

	var errs []error
	for _, listener := range listeners {
		if err := d.update(listener); err != nil {
			slog.Warn("listener failed", "driver", d.name, "listener", fmt.Sprintf("%T", listener), "error", err)
			errs = append(errs, &ListenerError{Listener: listener, Err: err})
		}
	}
	return errors.Join(errs...)
}

func (d *Driver) update(listener Listener) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return listener.Update(d)
}
