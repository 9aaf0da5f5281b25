package notifier

import (
	"github.com/kettari/driver-status/internal/entity"
)

type StatusRecorder interface {
	Record(change *entity.StatusChange) error
}

// Journal stores every status change
type Journal struct {
	recorder StatusRecorder
}

func NewJournalObserver(recorder StatusRecorder) *Journal {
	return &Journal{recorder: recorder}
}

func (j *Journal) Update(driver *entity.Driver) error {
	return j.recorder.Record(entity.NewStatusChange(driver))
}
