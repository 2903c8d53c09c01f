package models

import "time"

// ChatMessage keeps string primary keys: the front end renders ids it
// received as strings, including the synthetic greeting message.
type ChatMessage struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Role      string    `json:"role"` // "user"|"assistant"
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
