package entity

import (
	"gorm.io/gorm"
)

// StatusChange is one journal record of a driver status transition
type StatusChange struct {
	gorm.Model
	DriverName string `json:"driver_name" gorm:"size:255;index;not null"`
	FromStatus Status `json:"from_status" gorm:"size:50;not null"`
	ToStatus   Status `json:"to_status" gorm:"size:50;not null"`
}

func NewStatusChange(driver *Driver) *StatusChange {
	return &StatusChange{
		DriverName: driver.Name(),
		FromStatus: driver.PreviousStatus(),
		ToStatus:   driver.Status(),
	}
}
