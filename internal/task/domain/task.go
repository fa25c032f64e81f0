package domain

import "time"

// Task is a to-do item owned by exactly one user. It is visible and mutable
// only through its owner's identity.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	IsCompleted bool      `json:"isCompleted" gorm:"default:false"`
	UserID      uint      `json:"userId" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
