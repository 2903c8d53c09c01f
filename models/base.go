package models

import (
	"time"

	"gorm.io/gorm"
)

// Base stands in for gorm.Model so rows marshal the lowercase keys the
// Mini App reads (`id`, `createdAt`); the soft-delete marker never leaves
// the server.
type Base struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
