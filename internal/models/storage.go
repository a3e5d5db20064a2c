package models

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsRecord is the single-row key/value home of the persisted
// template settings blob. The blob always holds a complete
// TemplateSettings object; schema drift is absorbed at load time, not in
// the table.
type SettingsRecord struct {
	Key       string         `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (SettingsRecord) TableName() string { return "template_settings" }

// DraftRecord stores one serialized draft invoice keyed by bill number.
// Dates inside Data are RFC3339 strings on the wire.
type DraftRecord struct {
	BillNumber string         `gorm:"primaryKey"`
	Data       datatypes.JSON `gorm:"not null"`
	UpdatedAt  time.Time
}

func (DraftRecord) TableName() string { return "invoice_drafts" }
