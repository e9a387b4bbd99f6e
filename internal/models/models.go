package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AdminUserRole enumerates allowed roles.
type AdminUserRole string

const (
	RoleSuperAdmin AdminUserRole = "SUPERADMIN"
	RoleAdmin      AdminUserRole = "ADMIN"
	RoleViewer     AdminUserRole = "VIEWER"
)

// UserStatus enumerates user account states.
type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
	StatusLocked   UserStatus = "Locked"
)

// AdminUser may import historical draws and manage other admins.
type AdminUser struct {
	ID           uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username     string        `gorm:"uniqueIndex;not null" json:"username"`
	Email        string        `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string        `gorm:"not null" json:"-"`
	Role         AdminUserRole `gorm:"not null" json:"role"`
	Status       UserStatus    `gorm:"not null;default:'Active'" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// HistoricalDraw is one official result. Numbers are kept ascending.
type HistoricalDraw struct {
	ID         uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Sequence   int           `gorm:"not null;uniqueIndex" json:"sequence"` // import order, oldest first
	Numbers    pq.Int64Array `gorm:"type:integer[];not null" json:"numbers"`
	ImportedBy *uuid.UUID    `gorm:"type:uuid" json:"imported_by,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// GeneratedBatch records one batch handed to a player.
type GeneratedBatch struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Requested     int             `gorm:"not null" json:"requested"`
	Unique        bool            `gorm:"not null" json:"unique"`
	Partial       bool            `gorm:"not null;default:false" json:"partial"`
	HistoryStatus string          `gorm:"not null" json:"history_status"`
	Warnings      pq.StringArray  `gorm:"type:text[]" json:"warnings"`
	Games         []GeneratedGame `gorm:"foreignKey:BatchID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"games"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GeneratedGame is one combination inside a GeneratedBatch.
type GeneratedGame struct {
	ID         uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BatchID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"batch_id"`
	Position   int           `gorm:"not null" json:"position"`
	Numbers    pq.Int64Array `gorm:"type:integer[];not null" json:"numbers"`
	Provenance string        `gorm:"not null" json:"provenance"`
	Attempts   int           `gorm:"not null" json:"attempts"`
	Sum        int           `gorm:"not null" json:"sum"`
	Evens      int           `gorm:"not null" json:"evens"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Ints converts a stored number column back to ints.
func Ints(a pq.Int64Array) []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[i] = int(v)
	}
	return out
}

// Int64s converts numbers for storage.
func Int64s(nums []int) pq.Int64Array {
	out := make(pq.Int64Array, len(nums))
	for i, n := range nums {
		out[i] = int64(n)
	}
	return out
}

// Migrate will create/update your tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AdminUser{},
		&HistoricalDraw{},
		&GeneratedBatch{},
		&GeneratedGame{},
	)
}
