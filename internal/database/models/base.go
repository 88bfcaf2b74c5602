package models

import (
	"time"
)

// BaseModel provides the common columns for all tables with integer primary keys
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:now()"`
}
