package model

import (
	"time"

	"gorm.io/datatypes"
)

// InteractionSnapshot stores the raw behavioral payloads that arrive with a
// finalized attempt. One row per attempt, upserted; scoring never reads it.
type InteractionSnapshot struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	AttemptRecordID uint           `json:"attempt_record_id" gorm:"not null;uniqueIndex"`
	Timeline        datatypes.JSON `json:"timeline,omitempty"`
	VoiceLog        datatypes.JSON `json:"voice_log,omitempty"`
	DeviceTest      datatypes.JSON `json:"device_test,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
