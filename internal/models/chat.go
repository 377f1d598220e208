package models

import (
	"time"
)

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type ChatConversation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PublicID  string    `gorm:"size:36;uniqueIndex;not null" json:"public_id"` // uuid handed to the client
	ProfileID uint      `gorm:"not null;index" json:"profile_id"`
	Profile   Profile   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title     string    `gorm:"size:200" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChatMessage struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	ConversationID uint             `gorm:"not null;index" json:"conversation_id"`
	Conversation   ChatConversation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Role           string           `gorm:"size:20;not null" json:"role"` // user, assistant, system
	Content        string           `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time        `gorm:"index" json:"created_at"`
}
