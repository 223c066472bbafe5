// Package gormkv stores cart snapshots and session records in a relational
// table through GORM. PostgreSQL and SQLite are both supported.
package gormkv

import "time"

// EntryDTO is one stored value. Namespace scopes keys to a visitor session.
type EntryDTO struct {
	Namespace string    `gorm:"primaryKey;size:64"`
	Key       string    `gorm:"primaryKey;size:128"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"index;not null"`
}

// TableName overrides GORM's pluralized default.
func (EntryDTO) TableName() string {
	return "cart_storage"
}
