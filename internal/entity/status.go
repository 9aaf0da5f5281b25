package entity

import (
	"errors"
	"fmt"
	"strings"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusEnRoute   Status = "En Route"
	StatusLoading   Status = "Loading"
	StatusUnloading Status = "Unloading"
	StatusOffDuty   Status = "Off Duty"
)

var ErrUnknownStatus = errors.New("unknown status")

var statuses = []Status{
	StatusAvailable,
	StatusEnRoute,
	StatusLoading,
	StatusUnloading,
	StatusOffDuty,
}

// Statuses returns every known status in display order
func Statuses() []Status {
	result := make([]Status, len(statuses))
	copy(result, statuses)
	return result
}

// ParseStatus matches s against the known statuses ignoring case and surrounding spaces
func ParseStatus(s string) (Status, error) {
	candidate := strings.TrimSpace(s)
	for _, status := range statuses {
		if strings.EqualFold(string(status), candidate) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) Valid() bool {
	for _, status := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Transitions lists the statuses a driver currently in s may switch to
func (s Status) Transitions() []Status {
	result := make([]Status, 0, len(statuses))
	for _, status := range statuses {
		if status != s {
			result = append(result, status)
		}
	}
	return result
}

// JoinStatuses renders statuses as a comma separated list
func JoinStatuses(list []Status) string {
	names := make([]string, 0, len(list))
	for _, status := range list {
		names = append(names, string(status))
	}
	return strings.Join(names, ", ")
}
