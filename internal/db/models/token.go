// Package models contains database model definitions.
package models

import (
	"time"
)

// Token records an issued random string. Only its fingerprint is stored.
type Token struct {
	ID          uint64    `gorm:"primaryKey"`
	Fingerprint string    `gorm:"size:64;uniqueIndex"`
	Length      int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}
