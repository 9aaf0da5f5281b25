package entity

import (
	"fmt"
)

// Listener is notified synchronously every time the subject it is registered with changes
type Listener interface {
	Update(driver *Driver) error
}

type Subject interface {
	Register(listener Listener)
	Unregister(listener Listener)
	Notify() error
}

// MessageDispatcher delivers formatted notifications to external recipients
type MessageDispatcher interface {
	Send(notification []string) error
}

// ListenerError is a failure of a single listener during notification
type ListenerError struct {
	Listener Listener
	Err      error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("listener %T: %v", e.Listener, e.Err)
}

func (e *ListenerError) Unwrap() error {
	return e.Err
}
