package history

import (
	"errors"
	"log/slog"

	"github.com/kettari/driver-status/internal/entity"
	"github.com/kettari/driver-status/internal/storage"
)

var ErrNoDatabase = errors.New("database is not configured")

// Journal keeps the history of driver status changes in the database
type Journal struct {
	manager *storage.Manager
}

func NewJournal(manager *storage.Manager) *Journal {
	return &Journal{manager: manager}
}

// Migrate creates or updates the journal schema
func (j *Journal) Migrate() error {
	if err := j.connect(); err != nil {
		return err
	}
	return j.manager.DB().AutoMigrate(&entity.StatusChange{})
}

func (j *Journal) Record(change *entity.StatusChange) error {
	if err := j.connect(); err != nil {
		return err
	}
	if err := j.manager.DB().Create(change).Error; err != nil {
		return err
	}
	slog.Debug("status change recorded", "id", change.ID, "driver", change.DriverName,
		"from", change.FromStatus, "to", change.ToStatus)
	return nil
}

// Recent loads up to limit latest changes of the driver, newest first
func (j *Journal) Recent(driverName string, limit int) ([]entity.StatusChange, error) {
	if err := j.connect(); err != nil {
		return nil, err
	}

	var changes []entity.StatusChange
	if result := j.manager.DB().
		Where(&entity.StatusChange{DriverName: driverName}).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&changes); result.Error != nil {
		return nil, result.Error
	}
	slog.Debug("found status changes", "driver", driverName, "changes_count", len(changes))

	return changes, nil
}

func (j *Journal) connect() error {
	if j.manager == nil {
		return ErrNoDatabase
	}
	return j.manager.Connect()
}
