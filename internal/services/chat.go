package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"jolliville/internal/db"
	"jolliville/internal/models"
	"jolliville/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrConversationNotFound = errors.New("conversation not found")

// Intent is the closed set of locally-answered chat commands. Anything
// outside it goes to the completion provider.
type Intent int

const (
	IntentNone Intent = iota
	IntentJournalRecap
	IntentMoodSummary
)

// DetectIntent classifies the user's message against the command set by
// whole-word match, not substring containment.
func DetectIntent(message string) Intent {
	for _, word := range strings.Fields(strings.ToLower(message)) {
		word = strings.Trim(word, ".,!?;:'\"")
		switch word {
		case "journal", "entry", "entries":
			return IntentJournalRecap
		case "mood", "moods", "feeling", "feelings":
			return IntentMoodSummary
		}
	}
	return IntentNone
}

// answerIntent builds a local reply from journal rows, no provider call.
func answerIntent(profileID uint, intent Intent) (string, error) {
	switch intent {
	case IntentJournalRecap:
		entry, err := LatestJournalEntry(profileID)
		if err != nil {
			return "", err
		}
		if entry == nil {
			return "You haven't written a journal entry yet. Want to start one? Even a sentence counts.", nil
		}
		return fmt.Sprintf("Your last entry was on %s and you were feeling %s. Want to tell me more about today?",
			entry.CreatedAt.Format("January 2"), entry.Mood), nil

	case IntentMoodSummary:
		summary, err := MoodSummary(profileID, 30)
		if err != nil {
			return "", err
		}
		if len(summary) == 0 {
			return "I don't have any mood data for the last month yet. Journaling a few days in a row will build your picture.", nil
		}
		var parts []string
		for _, mood := range []string{models.MoodHappy, models.MoodCalm, models.MoodSad, models.MoodAngry, models.MoodAnxious} {
			if n := summary[mood]; n > 0 {
				parts = append(parts, fmt.Sprintf("%s %d", mood, n))
			}
		}
		return "Over the last 30 days your moods were: " + strings.Join(parts, ", ") + ".", nil
	}
	return "", fmt.Errorf("no local answer for intent %d", intent)
}

// Reply produces the assistant's answer for the running message list.
// Local intents are answered from journal rows; everything else is
// forwarded to the provider with the fixed preamble plus the user's most
// recent journal entry as context.
func Reply(profile *models.Profile, messages []Message) (string, error) {
	var lastUser string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleUser {
			lastUser = messages[i].Content
			break
		}
	}

	if intent := DetectIntent(lastUser); intent != IntentNone {
		return answerIntent(profile.ID, intent)
	}

	composed := []Message{{Role: models.RoleSystem, Content: SystemPreamble}}
	entry, err := LatestJournalEntry(profile.ID)
	if err != nil {
		return "", err
	}
	if entry != nil {
		journalContext := fmt.Sprintf("Context: the user's most recent journal entry (%s, feeling %s): %s",
			entry.CreatedAt.Format("2006-01-02"), entry.Mood, entry.Reflection)
		composed = append(composed, Message{Role: models.RoleSystem, Content: journalContext})
	}
	composed = append(composed, messages...)

	return GetLLMService().Complete(composed)
}

// CreateConversation starts a new persisted conversation.
func CreateConversation(profileID uint, title string) (*models.ChatConversation, error) {
	conv := models.ChatConversation{
		PublicID:  uuid.NewString(),
		ProfileID: profileID,
		Title:     utils.SanitizeText(title),
	}
	if err := db.DB.Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListConversations returns a profile's conversations, newest activity first.
func ListConversations(profileID uint) ([]models.ChatConversation, error) {
	var convs []models.ChatConversation
	err := db.DB.Where("profile_id = ?", profileID).
		Order("updated_at DESC").
		Find(&convs).Error
	return convs, err
}

// FindConversation resolves a conversation by public ID, scoped to its owner.
func FindConversation(profileID uint, publicID string) (*models.ChatConversation, error) {
	var conv models.ChatConversation
	err := db.DB.Where("profile_id = ? AND public_id = ?", profileID, publicID).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ConversationMessages returns a conversation's messages in creation order.
func ConversationMessages(conversationID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := db.DB.Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// AppendMessages stores a user/assistant exchange and bumps the
// conversation's activity timestamp.
func AppendMessages(conv *models.ChatConversation, userText, assistantText string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		rows := []models.ChatMessage{
			{ConversationID: conv.ID, Role: models.RoleUser, Content: userText},
			{ConversationID: conv.ID, Role: models.RoleAssistant, Content: assistantText},
		}
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(conv).Update("updated_at", time.Now()).Error
	})
}
