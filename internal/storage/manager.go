package storage

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

type Manager struct {
	connectionString string
	db               *gorm.DB
}

func NewManager(connectionString string) *Manager {
	return &Manager{connectionString: connectionString}
}

func (m *Manager) Connect() error {
	var err error

	if m.db != nil {
		return nil
	}

	m.db, err = gorm.Open(dialector(m.connectionString), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "drv_", // table for `StatusChange` is `drv_status_changes`
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	return nil
}

func (m *Manager) DB() *gorm.DB {
	return m.db
}

// dialector picks postgres for URLs and key/value DSNs, sqlite for everything else
func dialector(connectionString string) gorm.Dialector {
	if strings.HasPrefix(connectionString, "postgres://") ||
		strings.HasPrefix(connectionString, "postgresql://") ||
		strings.Contains(connectionString, "host=") {
		return postgres.Open(connectionString)
	}
	return sqlite.Open(strings.TrimPrefix(connectionString, "sqlite://"))
}
