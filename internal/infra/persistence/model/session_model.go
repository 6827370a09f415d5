package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table.
type SessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	TokenHash  string    `gorm:"type:char(64);uniqueIndex;not null"`
	UserAgent  string    `gorm:"type:text"`
	IPAddress  string    `gorm:"type:varchar(64)"`
	ExpiresAt  time.Time `gorm:"index;not null"`
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
